package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cosumar-digital/docextract/constants"
	"github.com/cosumar-digital/docextract/internal/acquire"
	"github.com/cosumar-digital/docextract/internal/common"
	"github.com/cosumar-digital/docextract/internal/entity"
	"github.com/cosumar-digital/docextract/internal/extract"
	"github.com/cosumar-digital/docextract/internal/langdetect"
	"github.com/cosumar-digital/docextract/internal/ner"
	"github.com/cosumar-digital/docextract/internal/ocr"
	"github.com/cosumar-digital/docextract/internal/pipeline"
	"github.com/cosumar-digital/docextract/internal/repository"
	"github.com/cosumar-digital/docextract/internal/translate"
)

func main() {
	var (
		file        = flag.String("file", "", "path to the CV or CIN scan (pdf/jpg/png)")
		mode        = flag.String("mode", constants.ModeCV, "extraction mode: cv | cin")
		positionID  = flag.Int64("position", 0, "position id to load the keyword profile from (needs DB_URL)")
		application = flag.Int64("application", 0, "application id to persist the record onto (needs DB_URL)")
		profilePath = flag.String("profile", "", "path to a JSON keyword profile (alternative to -position)")
		saveLocal   = flag.Bool("save", false, "also store the record in the local sqlite store")
	)
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	if *file == "" {
		logger.Error("usage: extract -file <path> [-mode cv|cin] [-position N] [-application N] [-profile p.json] [-save]")
		os.Exit(2)
	}
	format := constants.MapExtToFormat(filepath.Ext(*file))
	if format == "" {
		logger.Error("unsupported file extension", zap.String("file", *file))
		os.Exit(2)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		logger.Error("read file", zap.String("file", *file), zap.Error(err))
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	var pool repository.Pool
	if cfg.Database.DSN != "" {
		p, err := repository.Open(ctx, cfg.Database, logger)
		if err != nil {
			logger.Error("open database", zap.Error(err))
			os.Exit(1)
		}
		defer repository.Close(p, logger)
		pool = p
	}

	profile, err := loadProfile(ctx, pool, *positionID, *profilePath, logger)
	if err != nil {
		logger.Error("load keyword profile", zap.Error(err))
		os.Exit(1)
	}

	proc := buildProcessor(cfg, logger)
	start := time.Now()
	record, err := proc.Process(ctx, *mode, data, format, profile)
	if err != nil {
		logger.Error("extraction failed", zap.Error(err), zap.Int64("duration_ms", time.Since(start).Milliseconds()))
		os.Exit(1)
	}

	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		logger.Error("marshal record", zap.Error(err))
		os.Exit(1)
	}
	fmt.Println(string(out))

	if *application > 0 {
		if pool == nil {
			logger.Error("-application needs DB_URL")
			os.Exit(1)
		}
		if err := repository.SaveExtraction(ctx, pool, *application, record, logger); err != nil {
			logger.Error("persist record", zap.Error(err))
			os.Exit(1)
		}
	}

	if *saveLocal {
		store, err := repository.OpenLocal(ctx, cfg.Database.LocalPath, logger)
		if err != nil {
			logger.Error("open local store", zap.Error(err))
			os.Exit(1)
		}
		defer func() { _ = store.Close() }()
		err = store.Save(ctx, repository.StoredExtraction{
			ID:         uuid.New(),
			SourcePath: *file,
			Mode:       *mode,
			Status:     constants.JobStatusExtracted,
			Record:     *record,
			CreatedAt:  time.Now().UTC(),
		})
		if err != nil {
			logger.Error("save to local store", zap.Error(err))
			os.Exit(1)
		}
	}
}

func loadProfile(ctx context.Context, pool repository.Pool, positionID int64, profilePath string, logger *zap.Logger) (entity.KeywordProfile, error) {
	switch {
	case positionID > 0 && pool != nil:
		return repository.LoadKeywordProfile(ctx, pool, positionID, logger)
	case profilePath != "":
		b, err := os.ReadFile(profilePath)
		if err != nil {
			return entity.KeywordProfile{}, fmt.Errorf("read profile file: %w", err)
		}
		var p entity.KeywordProfile
		if err := json.Unmarshal(b, &p); err != nil {
			return entity.KeywordProfile{}, fmt.Errorf("decode profile file: %w", err)
		}
		return p, nil
	default:
		return entity.KeywordProfile{}, nil
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
