package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/jackc/pgx/v5/pgxpool"

	homecrewpb "github.com/homecrew/homecrew-backend/gen/proto/homecrew/v1"
	"github.com/homecrew/homecrew-backend/gen/ent"
	"github.com/homecrew/homecrew-backend/internal/async"
	"github.com/homecrew/homecrew-backend/internal/common"
	"github.com/homecrew/homecrew-backend/internal/export"
	"github.com/homecrew/homecrew-backend/internal/pipeline"
	repo "github.com/homecrew/homecrew-backend/internal/repository"
	svc "github.com/homecrew/homecrew-backend/internal/server"
	"github.com/homecrew/homecrew-backend/internal/vision"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A sqlite: DSN runs everything against a local file, no Postgres needed.
	var (
		entc *ent.Client
		pool *pgxpool.Pool
		err  error
	)
	if dsn, ok := strings.CutPrefix(cfg.Database.DSN, "sqlite:"); ok {
		entc, err = repo.OpenSQLite(dsn, logger)
		if err != nil {
			logger.Error("failed to open sqlite database", "error", err)
			os.Exit(1)
		}
		if err := entc.Schema.Create(ctx); err != nil {
			logger.Error("failed to migrate sqlite schema", "error", err)
			os.Exit(1)
		}
	} else {
		entc, pool, err = svc.ConnectDB(ctx, cfg.Database, logger)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		if err := svc.PingDB(ctx, pool, logger, 5*time.Second); err != nil {
			logger.Error("failed to ping database", "error", err)
			os.Exit(1)
		}
	}
	defer svc.CloseDB(entc, pool, logger)

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	householdsRepo := repo.NewHouseholdRepository(entc, logger)
	merchantsRepo := repo.NewMerchantRepository(entc, logger)
	expensesRepo := repo.NewExpenseRepository(entc, logger)

	extractor := vision.NewClient(vision.Config{
		BaseURL:     cfg.Vision.BaseURL,
		Model:       cfg.Vision.Model,
		APIKey:      cfg.Vision.APIKey,
		Temperature: cfg.Vision.Temperature,
		Timeout:     cfg.Vision.Timeout,
	}, logger)

	scanPipe := pipeline.NewPipeline(logger, pipeline.Config{MinConfidence: 0.60},
		householdsRepo, merchantsRepo, expensesRepo, extractor)

	queue := async.NewScanQueue(scanPipe, logger,
		async.WithWorkers(6),
		async.WithQueueSize(512),
		async.WithScanTimeout(3*time.Minute),
	)

	householdsService := svc.NewHouseholdServer(householdsRepo, logger)
	homecrewpb.RegisterHouseholdsServiceServer(grpcServer, householdsService)
	merchantsService := svc.NewMerchantServer(merchantsRepo, householdsRepo, logger)
	homecrewpb.RegisterMerchantsServiceServer(grpcServer, merchantsService)
	expensesService := svc.NewExpenseServer(expensesRepo, householdsRepo, scanPipe, logger)
	homecrewpb.RegisterExpensesServiceServer(grpcServer, expensesService)
	exportService := svc.NewExportServer(export.NewService(expensesRepo, logger), logger)
	homecrewpb.RegisterExportServiceServer(grpcServer, exportService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("homecrewd listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
