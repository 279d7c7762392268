package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/smartjects/importer/internal/common"
	"github.com/smartjects/importer/internal/logos"
	repo "github.com/smartjects/importer/internal/repository"
)

func main() {
	var (
		inmem   = flag.Bool("inmem", false, "use in-memory SQLite database")
		dryRun  = flag.Bool("dry-run", false, "report matches without writing")
		logoCSV = flag.String("logos", "", "institution registry CSV path (overrides LOGOS_REGISTRY_PATH)")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	if *logoCSV != "" {
		cfg.Logos.RegistryPath = *logoCSV
	}
	if cfg.Logos.RegistryPath == "" {
		logger.Error("no registry configured, set --logos or LOGOS_REGISTRY_PATH")
		os.Exit(1)
	}

	registry, err := logos.LoadRegistry(cfg.Logos.RegistryPath, logger)
	if err != nil {
		logger.Error("failed to load logo registry", "path", cfg.Logos.RegistryPath, "error", err)
		os.Exit(1)
	}

	dbResult, err := common.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()

	store := repo.NewImportStore(dbResult.Client, logger)

	stats, err := logos.Relink(ctx, store, registry, *dryRun, logger)
	if err != nil {
		logger.Error("relink failed", "error", err)
		os.Exit(1)
	}

	logger.Info("relink complete",
		"total", stats.Total,
		"with_teams", stats.WithTeams,
		"found_matches", stats.FoundMatches,
		"already_correct", stats.AlreadyCorrect,
		"updated", stats.Updated,
		"errors", stats.Errors,
		"dry_run", *dryRun,
	)
}
