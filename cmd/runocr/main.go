package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/cosumar-digital/docextract/constants"
	"github.com/cosumar-digital/docextract/internal/acquire"
	"github.com/cosumar-digital/docextract/internal/common"
	"github.com/cosumar-digital/docextract/internal/extract"
	"github.com/cosumar-digital/docextract/internal/langdetect"
	"github.com/cosumar-digital/docextract/internal/ocr"
	"github.com/cosumar-digital/docextract/internal/translate"
)

func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	if len(os.Args) != 2 {
		logger.Error("usage: runocr <file>")
		os.Exit(2)
	}
	path := os.Args[1]

	format := constants.MapExtToFormat(filepath.Ext(path))
	if format == "" {
		logger.Error("unsupported file extension", zap.String("path", path))
		os.Exit(2)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read file", zap.String("path", path), zap.Error(err))
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		os.Exit(1)
	}

	svc := buildAcquisition(cfg, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	start := time.Now()
	doc, err := svc.Acquire(ctx, data, format)
	if err != nil {
		logger.Error("acquisition failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("acquisition OK",
		zap.Int("pages", len(doc.Pages)),
		zap.String("language", doc.Language),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		logger.Error("marshal output", zap.Error(err))
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func buildAcquisition(cfg *common.Config, logger *zap.Logger) *acquire.Service {
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
	return acquire.NewService(engine, langdetect.New(), translator, cfg.Translate.TargetLanguage, logger)
}
