package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goldenstack/enchantd/internal/config"
	"github.com/goldenstack/enchantd/internal/enchant"
	"github.com/goldenstack/enchantd/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)

	manager, err := buildManager(cfg)
	if err != nil {
		log.Fatalf("Failed to build enchantment catalog: %v", err)
	}

	enchantService := enchant.NewService(manager, cfg.CacheSize, cfg.CacheTTL)
	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, manager, enchantService)

	// Shut down cleanly on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	case <-ctx.Done():
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			slog.Error("Shutdown failed", "error", err)
		}
	}
}

// buildManager constructs the catalog from configuration, applying JSON table
// overrides on top of the built-in defaults when TABLES_PATH is set.
func buildManager(cfg *config.Config) (*enchant.Manager, error) {
	bonus := enchant.BonusTwoDraws
	if cfg.BonusStrategy == config.BonusStrategySingleDraw {
		bonus = enchant.BonusSingleDraw
	}

	manager := enchant.NewBuilder().
		UseConcurrentMaps(true).
		EagerCopyDefaults(cfg.EagerDefaults).
		Bonus(bonus).
		Build()

	if cfg.TablesPath != "" {
		loader := enchant.NewLoader()
		tables, err := loader.Load(cfg.TablesPath)
		if err != nil {
			return nil, err
		}
		slog.Info(enchant.LogMsgTablesLoaded, "path", cfg.TablesPath, "entries", len(tables.Enchantments))
		if err := loader.Apply(tables, manager); err != nil {
			return nil, err
		}
		slog.Info(enchant.LogMsgTableApplied, "path", cfg.TablesPath)
	}

	return manager, nil
}
