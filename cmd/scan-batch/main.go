package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/homecrew/homecrew-backend/constants"
	"github.com/homecrew/homecrew-backend/internal/async"
	"github.com/homecrew/homecrew-backend/internal/common"
	"github.com/homecrew/homecrew-backend/internal/export"
	"github.com/homecrew/homecrew-backend/internal/pipeline"
	repo "github.com/homecrew/homecrew-backend/internal/repository"
	"github.com/homecrew/homecrew-backend/internal/vision"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem   = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir     = flag.String("dir", "", "directory to scan receipt images from (required)")
		out     = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		workers = flag.Int("workers", 4, "number of scan workers")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "expenses.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	if cfg.Vision.APIKey == "" {
		printError("Error: VISION_API_KEY is required\n")
		os.Exit(1)
	}

	dbResult, err := common.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()

	entc := dbResult.Client
	householdsRepo := repo.NewHouseholdRepository(entc, logger)
	merchantsRepo := repo.NewMerchantRepository(entc, logger)
	expensesRepo := repo.NewExpenseRepository(entc, logger)

	household, err := householdsRepo.GetOrCreateByName(ctx, "Local Batch", "USD")
	if err != nil {
		logger.Error("failed to get or create household", "error", err)
		os.Exit(1)
	}
	logger.Info("using household", "id", household.ID, "name", household.Name)

	extractor := vision.NewClient(vision.Config{
		BaseURL:     cfg.Vision.BaseURL,
		Model:       cfg.Vision.Model,
		APIKey:      cfg.Vision.APIKey,
		Temperature: cfg.Vision.Temperature,
		Timeout:     cfg.Vision.Timeout,
	}, logger)

	scanPipe := pipeline.NewPipeline(logger, pipeline.Config{},
		householdsRepo, merchantsRepo, expensesRepo, extractor)
	queue := async.NewScanQueue(scanPipe, logger,
		async.WithWorkers(*workers),
		async.WithQueueSize(256),
	)

	// Walk the directory and enqueue every supported image.
	enqueued := 0
	walkErr := filepath.WalkDir(*dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != *dir {
				return filepath.SkipDir
			}
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := constants.AllowedImageExtensions[ext]; !ok {
			return nil
		}
		enqueued++
		return queue.Enqueue(ctx, async.Job{
			HouseholdID: household.ID,
			ImagePath:   path,
			SubmittedAt: time.Now(),
		})
	})
	if walkErr != nil {
		logger.Error("directory walk failed", "dir", *dir, "error", walkErr)
		os.Exit(1)
	}
	logger.Info("queued receipts", "count", enqueued, "dir", *dir)

	// Shutdown drains the queue before returning.
	queue.Shutdown(ctx)

	xlsx, err := export.NewService(expensesRepo, logger).ExportExpensesXLSX(ctx, household.ID, nil, nil)
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsx, 0o644); err != nil {
		logger.Error("failed to write workbook", "path", *out, "error", err)
		os.Exit(1)
	}
	logger.Info("batch complete", "scanned", enqueued, "out", *out)
}
