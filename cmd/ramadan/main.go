package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezkam/ramadan/internal/config"
	"github.com/rezkam/ramadan/internal/infrastructure/observability"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadCLIConfig()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Logs go to stderr so command output on stdout stays clean
	providers, err := observability.Init(ctx, observability.Config{
		Enabled:     cfg.Observability.OTelEnabled,
		ServiceName: cfg.Observability.ServiceName,
		LogOutput:   os.Stderr,
	})
	if err != nil {
		return err
	}
	defer func() {
		// Use a timeout to prevent hanging if collector is unreachable
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Observability.ShutdownTimeout)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "failed to shutdown telemetry", "error", err)
		}
	}()
	slog.SetDefault(providers.Logger)

	engine, err := newEngine(cfg.Calendar)
	if err != nil {
		return fmt.Errorf("failed to build calendar: %w", err)
	}

	a, err := newApp(engine, time.Now)
	if err != nil {
		return err
	}

	return newRootCmd(a).ExecuteContext(ctx)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "ramadan",
		Short:         "Ramadan calendar and Quran reading planner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newWindowsCmd(a))
	root.AddCommand(newStatusCmd(a))
	root.AddCommand(newDayCmd(a))
	root.AddCommand(newTargetCmd(a))
	root.AddCommand(newDistributeCmd(a))
	root.AddCommand(newChallengesCmd(a))
	return root
}
