package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	extractorpb "github.com/agrodesk/docextract/gen/extractor/v1"
	"github.com/agrodesk/docextract/internal/async"
	"github.com/agrodesk/docextract/internal/common"
	"github.com/agrodesk/docextract/internal/export"
	"github.com/agrodesk/docextract/internal/llm/openai"
	"github.com/agrodesk/docextract/internal/observability/metrics"
	"github.com/agrodesk/docextract/internal/pipeline"
	"github.com/agrodesk/docextract/internal/repository"
	"github.com/agrodesk/docextract/internal/review"
	"github.com/agrodesk/docextract/internal/rules"
	"github.com/agrodesk/docextract/internal/server"
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	documentsRepo := repository.NewDocumentRepository(entc, logger)
	resultsRepo := repository.NewExtractionRepository(entc, logger)
	reviewsRepo := repository.NewReviewRepository(entc, logger)

	openaiClient := openai.NewClient(openai.Config{
		APIKey:         cfg.LLM.APIKey,
		BaseURL:        cfg.LLM.BaseURL,
		Model:          cfg.LLM.Model,
		Temperature:    cfg.LLM.Temperature,
		Timeout:        cfg.LLM.Timeout,
		MaxPromptChars: cfg.Extraction.MaxPromptChars,
		MaxRetries:     cfg.Extraction.MaxModelRetries,
		RatePerSec:     cfg.LLM.RatePerSec,
	}, logger)

	pipelineMetrics := metrics.NewPipelineMetrics()
	processor := pipeline.NewProcessor(
		logger, cfg.Extraction, rules.NewExtractor(logger),
		openaiClient, resultsRepo, pipelineMetrics,
	)
	reviewManager := review.NewManager(logger, resultsRepo, reviewsRepo)
	exporter := export.NewService(resultsRepo, logger)

	queue := async.NewExtractionQueue(processor, documentsRepo, logger,
		async.WithWorkers(cfg.Worker.Workers),
		async.WithQueueSize(cfg.Worker.QueueSize),
		async.WithProcessTimeout(cfg.Worker.ProcessTimeout),
	)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	svc := server.NewExtractorService(processor, documentsRepo, resultsRepo, reviewManager, exporter, cfg.LLM.FallbackModel, logger)
	extractorpb.RegisterExtractorServiceServer(grpcServer, svc)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	metricsSrv := &http.Server{
		Addr:    cfg.Server.MetricsAddr,
		Handler: pipelineMetrics.Handler(),
	}
	go func() {
		logger.Info("metrics listening", "addr", cfg.Server.MetricsAddr)
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics serve error", "error", err)
		}
	}()

	logger.Info("extractord listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(shutdownCtx)
	_ = metricsSrv.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
}
