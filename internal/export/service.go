// Package export renders stored extraction results as XLSX workbooks for the
// recruitment team.
package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/cosumar-digital/docextract/internal/repository"
)

type Service struct {
	store  *repository.LocalStore
	logger *zap.Logger
}

func NewService(store *repository.LocalStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// ExportXLSX returns an XLSX workbook (as bytes) with one row per stored
// extraction, newest first.
func (s *Service) ExportXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	extractions, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("query extractions: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Extractions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Extracted At",
		"Source File",
		"Mode",
		"Status",
		"Name",
		"Email",
		"Phone",
		"CIN",
		"Birth Date",
		"Match Ratio",
		"Keywords",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, e := range extractions {
		values := []any{
			e.CreatedAt.Format(time.RFC3339),
			e.SourcePath,
			e.Mode,
			string(e.Status),
			displayName(e),
			first(e.Record.Emails),
			first(e.Record.Phones),
			e.Record.CIN,
			e.Record.BirthDate,
			e.Record.MatchRatio,
			strings.Join(e.Record.KeywordsFound, ", "),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export complete",
		zap.Int("rows", len(extractions)),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return buf.Bytes(), nil
}

func displayName(e repository.StoredExtraction) string {
	if e.Record.PotentialName != "" {
		return e.Record.PotentialName
	}
	return strings.TrimSpace(e.Record.FirstName + " " + e.Record.LastName)
}

func first(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[0]
}
