// Package pipeline sequences acquisition, field extraction, name resolution
// and keyword matching into one synchronous run per document. It tolerates
// page-level failures; only an unreadable document aborts the run.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cosumar-digital/docextract/constants"
	"github.com/cosumar-digital/docextract/internal/common"
	"github.com/cosumar-digital/docextract/internal/entity"
	"github.com/cosumar-digital/docextract/internal/extract"
	"github.com/cosumar-digital/docextract/internal/fields"
	"github.com/cosumar-digital/docextract/internal/langdetect"
	"github.com/cosumar-digital/docextract/internal/match"
	"github.com/cosumar-digital/docextract/internal/ocr"
)

// Acquirer is the stage-1 surface the orchestrator drives. *acquire.Service
// satisfies it; tests substitute fakes.
type Acquirer interface {
	Rasterize(ctx context.Context, data []byte, format string) (*ocr.PageSet, error)
	AcquirePage(ctx context.Context, imgPath string) (entity.Page, error)
	Acquire(ctx context.Context, data []byte, format string) (*entity.Document, error)
}

type Processor struct {
	acquirer Acquirer
	ner      extract.EntityRecognizer // nil: name resolution falls back to document order
	logger   *zap.Logger
	now      func() time.Time
}

func NewProcessor(acquirer Acquirer, ner extract.EntityRecognizer, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{acquirer: acquirer, ner: ner, logger: logger, now: time.Now}
}

// Process dispatches on extraction mode.
func (p *Processor) Process(ctx context.Context, mode string, data []byte, format string, profile entity.KeywordProfile) (*entity.ExtractedRecord, error) {
	switch mode {
	case constants.ModeCIN:
		return p.ProcessCIN(ctx, data, format)
	case constants.ModeCV:
		return p.ProcessCV(ctx, data, format, profile)
	default:
		return nil, common.NewAppError("BAD_MODE", fmt.Sprintf("unknown extraction mode %q", mode), common.ErrInvalidInput)
	}
}

// ProcessCV walks the document page by page and stops acquiring as soon as
// both an email and a phone are known; contact data rarely shows up past the
// first pages and skipping the rest saves the OCR calls. All other fields are
// then extracted from the pages acquired so far. A page that fails OCR or
// translation contributes nothing and processing continues.
func (p *Processor) ProcessCV(ctx context.Context, data []byte, format string, profile entity.KeywordProfile) (*entity.ExtractedRecord, error) {
	set, err := p.acquirer.Rasterize(ctx, data, format)
	if err != nil {
		return nil, fmt.Errorf("acquire document: %w", err)
	}
	defer set.Close()

	doc := entity.Document{Language: langdetect.Unknown}
	var emails, phones []string
	for i, img := range set.Images {
		page, perr := p.acquirer.AcquirePage(ctx, img)
		if perr != nil {
			p.logger.Warn("page failed, continuing", zap.Int("page", i+1), zap.Error(perr))
			continue
		}
		doc.Pages = append(doc.Pages, page)
		if page.Language != langdetect.Unknown {
			doc.Language = page.Language
		}

		pageText := strings.ToLower(strings.Join(page.Lines, " "))
		emails = mergeUnique(emails, fields.Emails(pageText))
		phones = mergeUnique(phones, fields.Phones(pageText))
		if len(emails) > 0 && len(phones) > 0 && i+1 < len(set.Images) {
			p.logger.Info("contact fields found, skipping remaining pages",
				zap.Int("pages_done", i+1),
				zap.Int("pages_total", len(set.Images)),
			)
			break
		}
	}

	lines := doc.AllLines()
	fullText := strings.ToLower(strings.Join(lines, " "))

	// fallback pass over everything acquired, in case the per-page scan
	// came up empty
	if len(emails) == 0 {
		emails = fields.Emails(fullText)
	}
	if len(phones) == 0 {
		phones = fields.Phones(fullText)
	}

	record := &entity.ExtractedRecord{
		DetectedLanguage: doc.Language,
		Emails:           emails,
		Phones:           phones,
		Dates:            fields.Dates(fullText),
		LanguagesFound:   fields.FindVocabulary(fullText, fields.LanguagesVocabulary),
	}

	candidates := fields.CandidateNames(lines)
	record.PotentialName, record.FirstName, record.LastName = fields.ResolveName(candidates, p.ner)

	record.KeywordsFound, record.MatchRatio = match.Keywords(fullText, profile)

	// without a position profile the record still carries a generic skill
	// scan over the reference vocabularies
	if len(profile.DomainKeywords) == 0 {
		var vocab []string
		vocab = append(vocab, fields.FrameworksVocabulary...)
		vocab = append(vocab, fields.TechnologiesVocabulary...)
		vocab = append(vocab, fields.ConceptsVocabulary...)
		record.KeywordsFound = fields.FindVocabulary(fullText, vocab)
	}

	record.Stamp(p.now())
	if err := p.validate(record); err != nil {
		return nil, err
	}

	p.logger.Info("cv extraction complete",
		zap.Int("pages", len(doc.Pages)),
		zap.Int("emails", len(record.Emails)),
		zap.Int("phones", len(record.Phones)),
		zap.String("name", record.PotentialName),
		zap.Float64("match_ratio", record.MatchRatio),
	)
	return record, nil
}

// ProcessCIN extracts the identity fields of a scanned national ID card.
func (p *Processor) ProcessCIN(ctx context.Context, data []byte, format string) (*entity.ExtractedRecord, error) {
	doc, err := p.acquirer.Acquire(ctx, data, format)
	if err != nil {
		return nil, fmt.Errorf("acquire document: %w", err)
	}

	lines := doc.AllLines()
	record := &entity.ExtractedRecord{DetectedLanguage: doc.Language}
	record.CIN = fields.CIN(lines)
	record.BirthDate = fields.BirthDate(lines)
	record.FirstName, record.LastName = fields.IDCardName(lines)

	record.Stamp(p.now())
	if err := p.validate(record); err != nil {
		return nil, err
	}

	p.logger.Info("cin extraction complete",
		zap.Int("lines", len(lines)),
		zap.Bool("cin_found", record.CIN != ""),
		zap.Bool("birth_date_found", record.BirthDate != ""),
	)
	return record, nil
}

// mergeUnique appends the new matches that are not already collected,
// preserving document order.
func mergeUnique(have, more []string) []string {
	seen := make(map[string]struct{}, len(have))
	for _, s := range have {
		seen[s] = struct{}{}
	}
	for _, s := range more {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		have = append(have, s)
	}
	return have
}

func (p *Processor) validate(record *entity.ExtractedRecord) error {
	b, err := json.Marshal(record)
	if err != nil {
		return common.NewAppError("RECORD_MARSHAL", "serialize record", err)
	}
	if err := entity.ValidateRecordJSON(b); err != nil {
		return common.NewAppError("RECORD_SCHEMA", "record failed schema validation", err)
	}
	return nil
}
