// extractd watches an inbox directory for dropped-in CV scans, runs the
// extraction pipeline on a worker pool, and stores the records. A gRPC
// health endpoint is exposed for liveness probes.
package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/cosumar-digital/docextract/constants"
	"github.com/cosumar-digital/docextract/internal/acquire"
	"github.com/cosumar-digital/docextract/internal/async"
	"github.com/cosumar-digital/docextract/internal/common"
	"github.com/cosumar-digital/docextract/internal/entity"
	"github.com/cosumar-digital/docextract/internal/extract"
	"github.com/cosumar-digital/docextract/internal/ingest"
	"github.com/cosumar-digital/docextract/internal/langdetect"
	"github.com/cosumar-digital/docextract/internal/ner"
	"github.com/cosumar-digital/docextract/internal/ocr"
	"github.com/cosumar-digital/docextract/internal/pipeline"
	"github.com/cosumar-digital/docextract/internal/repository"
	"github.com/cosumar-digital/docextract/internal/translate"
)

func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := repository.OpenLocal(ctx, cfg.Database.LocalPath, logger)
	if err != nil {
		logger.Error("open local store", zap.Error(err))
		os.Exit(1)
	}
	defer func() { _ = store.Close() }()

	proc := buildProcessor(cfg, logger)

	handler := func(ctx context.Context, job async.Job) error {
		data, err := os.ReadFile(job.Path)
		if err != nil {
			return err
		}
		format := constants.MapExtToFormat(filepath.Ext(job.Path))
		record, err := proc.Process(ctx, job.Mode, data, format, entity.KeywordProfile{})
		if err != nil {
			return err
		}
		return store.Save(ctx, repository.StoredExtraction{
			ID:         uuid.New(),
			SourcePath: job.Path,
			Mode:       job.Mode,
			Status:     constants.JobStatusExtracted,
			Record:     *record,
			CreatedAt:  time.Now().UTC(),
		})
	}

	queue := async.NewQueue(handler, logger, async.WithWorkers(cfg.Watch.Workers))

	events, watchErrs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       []string{cfg.Watch.Root},
		InitialScan: true,
		Debounce:    cfg.Watch.Debounce,
	}, logger)
	if err != nil {
		logger.Error("start watcher", zap.Error(err))
		os.Exit(1)
	}

	// gRPC health endpoint for liveness probes
	grpcServer := grpc.NewServer()
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthSrv)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Watch.GRPCAddr)
	if err != nil {
		logger.Error("listen", zap.String("addr", cfg.Watch.GRPCAddr), zap.Error(err))
		os.Exit(1)
	}
	go func() {
		logger.Info("health endpoint listening", zap.String("addr", cfg.Watch.GRPCAddr))
		if serr := grpcServer.Serve(lis); serr != nil {
			logger.Error("grpc serve", zap.Error(serr))
		}
	}()
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	logger.Info("watching for documents",
		zap.String("root", cfg.Watch.Root),
		zap.Int("workers", cfg.Watch.Workers),
	)

	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
			drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			queue.Shutdown(drainCtx)
			cancel()
			grpcServer.GracefulStop()
			return
		case path, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			queue.Enqueue(async.Job{Path: path, Mode: constants.ModeCV})
		case werr, ok := <-watchErrs:
			if !ok {
				watchErrs = nil
				continue
			}
			if werr != nil {
				logger.Warn("watcher error", zap.Error(werr))
			}
		}
	}
}

func buildProcessor(cfg *common.Config, logger *zap.Logger) *pipeline.Processor {
	engine := ocr.NewExtractor(ocr.Config{
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
		TessdataDir:   cfg.OCR.TessdataDir,
	}, logger)

	var translator extract.Translator
	if cfg.Translate.URL != "" {
		translator = translate.NewClient(cfg.Translate.URL, cfg.Translate.APIKey, cfg.Translate.Timeout, logger)
	}
	svc := acquire.NewService(engine, langdetect.New(), translator, cfg.Translate.TargetLanguage, logger)
	return pipeline.NewProcessor(svc, ner.New(), logger)
}
