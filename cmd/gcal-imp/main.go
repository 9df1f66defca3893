package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/phasecurve/gcal-imp/internal/scheduler"
	"github.com/phasecurve/gcal-imp/internal/storage"
	gsync "github.com/phasecurve/gcal-imp/internal/sync"
	"github.com/phasecurve/gcal-imp/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gcal-imp failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())
	ctx := context.Background()

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o700); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	repo, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return err
	}
	defer repo.Close()
	if err := storage.MigrateUp(repo.DB()); err != nil {
		return fmt.Errorf("migrate cache: %w", err)
	}

	var api gsync.API
	if !cfg.Offline {
		svc, err := gsync.NewService(ctx, cfg.CredentialsPath, cfg.TokenCachePath)
		if err != nil {
			return fmt.Errorf("calendar auth (set GCAL_OFFLINE=1 to skip): %w", err)
		}
		api = gsync.NewGoogleAPI(svc)
	}
	engine := gsync.NewEngine(api, repo, gsync.Options{
		CalendarID: cfg.CalendarID,
		PastDays:   cfg.SyncPastDays,
		FutureDays: cfg.SyncFutureDays,
		Offline:    cfg.Offline,
	})

	if cfg.Offline && cfg.SeedSamples {
		if _, err := gsync.SeedSampleEvents(ctx, repo, time.Now().UTC()); err != nil {
			return fmt.Errorf("seed samples: %w", err)
		}
	}

	alerts := scheduler.NewEngine(cfg.SchedulerBuffer)
	alerts.Start()
	defer alerts.Stop()

	program := tea.NewProgram(update.NewModelWithConfig(engine, alerts, cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}
