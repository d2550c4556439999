// Package acquire turns raw document bytes into ordered, language-resolved
// text pages. It is stage 1 of the extraction pipeline: rasterization, OCR,
// per-page language detection and optional per-line translation.
package acquire

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/cosumar-digital/docextract/internal/entity"
	"github.com/cosumar-digital/docextract/internal/extract"
	"github.com/cosumar-digital/docextract/internal/langdetect"
	"github.com/cosumar-digital/docextract/internal/ocr"
)

// Engine is the rasterize+recognize surface the service needs from the OCR
// layer. *ocr.Extractor satisfies it; tests substitute fakes.
type Engine interface {
	extract.Recognizer
	Rasterize(ctx context.Context, data []byte, format string) (*ocr.PageSet, error)
}

type Service struct {
	engine     Engine
	detector   extract.LanguageDetector
	translator extract.Translator // nil disables translation
	targetLang string
	logger     *zap.Logger
}

func NewService(engine Engine, detector extract.LanguageDetector, translator extract.Translator, targetLang string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if targetLang == "" {
		targetLang = "fr"
	}
	return &Service{
		engine:     engine,
		detector:   detector,
		translator: translator,
		targetLang: targetLang,
		logger:     logger,
	}
}

// Rasterize exposes the engine's page splitting so the orchestrator can walk
// pages one at a time and stop early. The caller owns the returned set.
func (s *Service) Rasterize(ctx context.Context, data []byte, format string) (*ocr.PageSet, error) {
	return s.engine.Rasterize(ctx, data, format)
}

// AcquirePage OCRs one page image, detects its language and translates the
// lines to the target language when they differ. A failed translation keeps
// the original line: one bad line must not void the page's signal.
func (s *Service) AcquirePage(ctx context.Context, imgPath string) (entity.Page, error) {
	raw, err := s.engine.RecognizeFile(ctx, imgPath)
	if err != nil {
		return entity.Page{Language: langdetect.Unknown}, err
	}

	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if c := ocr.CoerceLine(l); c != "" {
			lines = append(lines, c)
		}
	}

	if conf := ocr.HeuristicConfidence(strings.Join(lines, "\n")); conf < 0.4 {
		s.logger.Warn("low-confidence page text",
			zap.String("image", imgPath),
			zap.Float32("confidence", conf),
			zap.Int("lines", len(lines)),
		)
	}

	lang := langdetect.Unknown
	if len(lines) > 0 {
		if detected, derr := s.detector.Detect(strings.Join(lines, " ")); derr == nil {
			lang = detected
		} else {
			s.logger.Warn("language detection failed", zap.Error(derr))
		}
	}

	if lang != s.targetLang && lang != langdetect.Unknown && s.translator != nil {
		lines = s.translateLines(ctx, lines, lang)
	}

	return entity.Page{Lines: lines, Language: lang}, nil
}

func (s *Service) translateLines(ctx context.Context, lines []string, sourceLang string) []string {
	out := make([]string, 0, len(lines))
	failed := 0
	for _, line := range lines {
		translated, err := s.translator.Translate(ctx, line, sourceLang, s.targetLang)
		if err != nil || strings.TrimSpace(translated) == "" {
			// keep the untranslated original
			out = append(out, line)
			failed++
			continue
		}
		out = append(out, strings.TrimSpace(translated))
	}
	if failed > 0 {
		s.logger.Warn("some lines kept untranslated",
			zap.Int("failed", failed),
			zap.Int("total", len(lines)),
			zap.String("source_lang", sourceLang),
		)
	}
	return out
}

// Acquire processes a whole document: every page is OCR'd in order and the
// result is assembled into an entity.Document. A single page failing OCR is
// logged and contributes no lines; only rasterization failure is fatal.
func (s *Service) Acquire(ctx context.Context, data []byte, format string) (*entity.Document, error) {
	set, err := s.engine.Rasterize(ctx, data, format)
	if err != nil {
		return nil, err
	}
	defer set.Close()

	doc := &entity.Document{Language: langdetect.Unknown}
	for i, img := range set.Images {
		page, perr := s.AcquirePage(ctx, img)
		if perr != nil {
			s.logger.Warn("page acquisition failed, skipping",
				zap.Int("page", i+1),
				zap.Error(perr),
			)
			continue
		}
		doc.Pages = append(doc.Pages, page)
		if page.Language != langdetect.Unknown {
			doc.Language = page.Language
		}
	}
	return doc, nil
}
