// Package progress aggregates reading logs into stats and decides which
// badges those stats earn.
package progress

import (
	"fmt"
	"math"
	"slices"

	"cloud.google.com/go/civil"

	"github.com/rezkam/ramadan/internal/domain"
)

// NewReadingLog validates a day's reading.
func NewReadingLog(date civil.Date, pagesRead int, slots map[domain.Slot]bool, notes string) (domain.ReadingLog, error) {
	if !date.IsValid() {
		return domain.ReadingLog{}, fmt.Errorf("%w: invalid log date %s", domain.ErrInvalidArgument, date)
	}
	if pagesRead < 0 || pagesRead > domain.QuranPages {
		return domain.ReadingLog{}, fmt.Errorf("%w: %d not in 0..%d", domain.ErrPagesReadOutOfRange, pagesRead, domain.QuranPages)
	}

	n, err := domain.NewNotes(notes)
	if err != nil {
		return domain.ReadingLog{}, err
	}

	completed := make(map[domain.Slot]bool, len(domain.Slots))
	for _, slot := range domain.Slots {
		completed[slot] = slots[slot]
	}

	return domain.ReadingLog{
		Date:           date,
		PagesRead:      pagesRead,
		SlotsCompleted: completed,
		Notes:          n,
	}, nil
}

// Summarize aggregates logs as of today.
//
// Logs dated after today are ignored. When several logs share a date the
// last one wins, matching the record store's upsert. Only days with at least
// one page read count as logged or extend a streak. The current streak may
// end yesterday so it does not reset before today has been logged.
func Summarize(logs []domain.ReadingLog, today civil.Date) domain.ReadingStats {
	pagesByDate := make(map[civil.Date]int, len(logs))
	for _, log := range logs {
		if log.Date.After(today) {
			continue
		}
		pagesByDate[log.Date] = log.PagesRead
	}

	var stats domain.ReadingStats
	var readDays []civil.Date
	for d, pages := range pagesByDate {
		stats.TotalPagesRead += pages
		if pages > 0 {
			readDays = append(readDays, d)
		}
	}
	stats.DaysLogged = len(readDays)
	if len(readDays) == 0 {
		return stats
	}

	slices.SortFunc(readDays, func(a, b civil.Date) int {
		return a.DaysSince(b)
	})

	run := 1
	stats.LongestStreak = 1
	for i := 1; i < len(readDays); i++ {
		if readDays[i].DaysSince(readDays[i-1]) == 1 {
			run++
		} else {
			run = 1
		}
		stats.LongestStreak = max(stats.LongestStreak, run)
	}

	// run now holds the streak ending on the latest read day
	if gap := today.DaysSince(readDays[len(readDays)-1]); gap <= 1 {
		stats.CurrentStreak = run
	}

	return stats
}

// Percent returns read as a rounded percentage of total, or 0 when total is not positive.
func Percent(read, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(read) / float64(total) * 100))
}

// SlotsDone counts the completed slots of a log.
func SlotsDone(log domain.ReadingLog) int {
	done := 0
	for _, slot := range domain.Slots {
		if log.SlotsCompleted[slot] {
			done++
		}
	}
	return done
}
