// Package quota derives a daily reading target from a page total and spreads
// it across the five prayer slots.
package quota

import (
	"fmt"
	"math"

	"github.com/rezkam/ramadan/internal/domain"
)

// weights is the share of the daily target read after each prayer, in slot order.
// The last weight is nominal: that slot takes whatever rounding leaves over.
var weights = map[domain.Slot]float64{
	domain.SlotFajr:    0.30,
	domain.SlotDhuhr:   0.15,
	domain.SlotAsr:     0.15,
	domain.SlotMaghrib: 0.10,
	domain.SlotIsha:    0.30,
}

// Weight returns the nominal share of the daily target for slot.
func Weight(slot domain.Slot) float64 {
	return weights[slot]
}

// DailyTarget returns ceil(totalPages / windowDays).
func DailyTarget(totalPages, windowDays int) (int, error) {
	if windowDays <= 0 {
		return 0, fmt.Errorf("%w: window days must be positive, got %d", domain.ErrInvalidArgument, windowDays)
	}
	if totalPages < 0 {
		return 0, fmt.Errorf("%w: total pages must not be negative, got %d", domain.ErrInvalidArgument, totalPages)
	}

	return (totalPages + windowDays - 1) / windowDays, nil
}

// Distribute splits dailyTarget across the slots.
//
// Every slot but the last gets round(dailyTarget * weight); the last slot
// gets the remainder, so the values always sum exactly to dailyTarget.
// Small targets leave the early slots at zero.
func Distribute(dailyTarget int) (map[domain.Slot]int, error) {
	if dailyTarget < 0 {
		return nil, fmt.Errorf("%w: daily target must not be negative, got %d", domain.ErrInvalidArgument, dailyTarget)
	}

	distribution := make(map[domain.Slot]int, len(domain.Slots))
	remaining := dailyTarget
	last := len(domain.Slots) - 1

	for i, slot := range domain.Slots {
		if i == last {
			distribution[slot] = remaining
			break
		}
		pages := int(math.Round(float64(dailyTarget) * weights[slot]))
		distribution[slot] = pages
		remaining -= pages
	}

	return distribution, nil
}

// NewGoalQuota derives the full quota for a goal of totalPages over windowDays.
func NewGoalQuota(totalPages, windowDays int) (domain.GoalQuota, error) {
	if totalPages <= 0 || totalPages > domain.MaxGoalPages {
		return domain.GoalQuota{}, fmt.Errorf("%w: %d not in 1..%d", domain.ErrTotalPagesOutOfRange, totalPages, domain.MaxGoalPages)
	}

	target, err := DailyTarget(totalPages, windowDays)
	if err != nil {
		return domain.GoalQuota{}, err
	}

	distribution, err := Distribute(target)
	if err != nil {
		return domain.GoalQuota{}, err
	}

	return domain.GoalQuota{
		TotalPages:   totalPages,
		WindowDays:   windowDays,
		DailyTarget:  target,
		Distribution: distribution,
	}, nil
}

// Sum returns the total pages in a distribution.
func Sum(distribution map[domain.Slot]int) int {
	total := 0
	for _, pages := range distribution {
		total += pages
	}
	return total
}
