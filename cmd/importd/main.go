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

	importerpb "github.com/smartjects/importer/gen/proto/importer/v1"
	"github.com/smartjects/importer/internal/batch"
	"github.com/smartjects/importer/internal/common"
	"github.com/smartjects/importer/internal/logos"
	"github.com/smartjects/importer/internal/reconcile"
	repo "github.com/smartjects/importer/internal/repository"
	svc "github.com/smartjects/importer/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
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

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	store := repo.NewImportStore(entc, logger)

	var registry *logos.Registry
	if cfg.Logos.RegistryPath != "" {
		registry, err = logos.LoadRegistry(cfg.Logos.RegistryPath, logger)
		if err != nil {
			logger.Error("failed to load logo registry", "path", cfg.Logos.RegistryPath, "error", err)
			os.Exit(1)
		}
	} else {
		logger.Warn("no logo registry configured, institution matching disabled")
	}

	rcfg := reconcile.DefaultConfig()
	rcfg.KeywordThreshold = cfg.Importer.KeywordThreshold
	rcfg.SimilarityThreshold = cfg.Importer.SimilarityThreshold

	opts := batch.Options{
		ChunkSize:           cfg.Importer.ChunkSize,
		ChunkDelay:          cfg.Importer.ChunkDelay,
		MinProgressInterval: cfg.Importer.ProgressInterval,
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	importService := svc.NewImportServer(store, registry, rcfg, opts, logger)
	importerpb.RegisterImportServiceServer(grpcServer, importService)

	// Register gRPC health service
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	// Reflection for grpcurl
	reflection.Register(grpcServer)

	logger.Info("importd listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	importService.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
}
