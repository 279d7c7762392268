package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/smartjects/importer/internal/batch"
	"github.com/smartjects/importer/internal/common"
	"github.com/smartjects/importer/internal/entity"
	"github.com/smartjects/importer/internal/export"
	"github.com/smartjects/importer/internal/logos"
	"github.com/smartjects/importer/internal/reconcile"
	repo "github.com/smartjects/importer/internal/repository"
	"github.com/smartjects/importer/internal/rows"
	"github.com/smartjects/importer/internal/xlsx"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		inmem   = flag.Bool("inmem", false, "use in-memory SQLite database")
		file    = flag.String("file", "", "workbook to import (required)")
		sheet   = flag.String("sheet", "", "worksheet name (defaults to the standard sheet)")
		out     = flag.String("out", "", "output XLSX report path (optional, defaults next to the workbook)")
		strict  = flag.Bool("strict", false, "run the create-or-update sync policy instead of the importer")
		dryRun  = flag.Bool("dry-run", false, "classify rows without writing (strict mode only)")
		limit   = flag.Int("limit", 0, "process only the first N rows (strict mode only)")
		logoCSV = flag.String("logos", "", "institution registry CSV path (overrides LOGOS_REGISTRY_PATH)")
	)
	flag.Parse()

	// Validate required flags
	if *file == "" {
		printError("Error: --file is required\n")
		os.Exit(1)
	}
	if *out == "" {
		base := filepath.Dir(*file)
		*out = filepath.Join(base, "import-report.xlsx")
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	if *logoCSV != "" {
		cfg.Logos.RegistryPath = *logoCSV
	}

	// Initialize database
	dbResult, err := common.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()

	store := repo.NewImportStore(dbResult.Client, logger)

	// Read the workbook
	raw, err := xlsx.ReadSheet(*file, pick(*sheet, cfg.Importer.SheetName), logger)
	if err != nil {
		logger.Error("failed to read workbook", "file", *file, "error", err)
		os.Exit(1)
	}
	input := make([]entity.Row, 0, len(raw))
	for _, m := range raw {
		input = append(input, rows.ParseRow(m))
	}

	if *strict {
		runSync(ctx, store, input, *dryRun, *limit, logger)
		return
	}

	// Institution registry (optional)
	var registry *logos.Registry
	if cfg.Logos.RegistryPath != "" {
		registry, err = logos.LoadRegistry(cfg.Logos.RegistryPath, logger)
		if err != nil {
			logger.Error("failed to load logo registry", "path", cfg.Logos.RegistryPath, "error", err)
			os.Exit(1)
		}
	} else {
		logger.Warn("no logo registry configured, institution matching will be skipped")
	}

	rcfg := reconcile.DefaultConfig()
	rcfg.KeywordThreshold = cfg.Importer.KeywordThreshold
	rcfg.SimilarityThreshold = cfg.Importer.SimilarityThreshold

	opts := batch.Options{
		ChunkSize:           cfg.Importer.ChunkSize,
		ChunkDelay:          cfg.Importer.ChunkDelay,
		MinProgressInterval: cfg.Importer.ProgressInterval,
	}

	sink := batch.ProgressFunc(func(current, total int, title string) error {
		logger.Info("progress", "current", current, "total", total, "title", title)
		return nil
	})

	orch := batch.NewOrchestrator(store, registry, rcfg, opts, sink, logger)

	start := time.Now()
	report, err := orch.Run(ctx, input)
	if err != nil {
		logger.Error("batch run failed", "error", err)
		os.Exit(1)
	}

	// Render the XLSX report
	reportBytes, err := export.ReportXLSX(report, logger)
	if err != nil {
		logger.Error("failed to render report", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, reportBytes, 0644); err != nil {
		logger.Error("failed to write report", "path", *out, "error", err)
		os.Exit(1)
	}

	logger.Info("batch import complete",
		"total", report.Stats.Total,
		"processed", report.Stats.Processed,
		"skipped_not_relevant", report.Stats.SkippedNotRelevant,
		"skipped_exists", report.Stats.SkippedExists,
		"invalid_format", report.Stats.InvalidFormat,
		"errors", report.Stats.Errors,
		"matched_institutions", report.Stats.MatchedInstitutions,
		"report", *out,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	fmt.Println(report.Summary(10))
}

func runSync(ctx context.Context, store *repo.ImportStore, input []entity.Row, dryRun bool, limit int, logger *slog.Logger) {
	syncer := batch.NewSynchronizer(store, batch.SyncOptions{
		DryRun: dryRun,
		Limit:  limit,
	}, logger)
	stats, err := syncer.Run(ctx, input)
	if err != nil {
		logger.Error("sync run failed", "error", err)
		os.Exit(1)
	}
	logger.Info("sync complete",
		"total_rows", stats.TotalRows,
		"valid", stats.Valid,
		"invalid_format", stats.InvalidFormat,
		"created", stats.Created,
		"updated", stats.Updated,
		"skipped", stats.Skipped,
		"errors", len(stats.Errors),
		"dry_run", dryRun,
	)
	for kind, n := range stats.NewReferences {
		logger.Info("new references", "kind", string(kind), "count", n)
	}
}

func pick(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
