package main

import (
	"context"
	"flag"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cosumar-digital/docextract/internal/common"
	"github.com/cosumar-digital/docextract/internal/export"
	"github.com/cosumar-digital/docextract/internal/repository"
)

func main() {
	out := flag.String("out", "extractions.xlsx", "output workbook path")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg := common.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	store, err := repository.OpenLocal(ctx, cfg.Database.LocalPath, logger)
	if err != nil {
		logger.Error("open local store", zap.Error(err))
		os.Exit(1)
	}
	defer func() { _ = store.Close() }()

	svc := export.NewService(store, logger)
	data, err := svc.ExportXLSX(ctx)
	if err != nil {
		logger.Error("export failed", zap.Error(err))
		os.Exit(1)
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		logger.Error("write workbook", zap.String("path", *out), zap.Error(err))
		os.Exit(1)
	}
	logger.Info("workbook written", zap.String("path", *out), zap.Int("bytes", len(data)))
}
