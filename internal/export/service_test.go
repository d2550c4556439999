package export

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/cosumar-digital/docextract/constants"
	"github.com/cosumar-digital/docextract/internal/entity"
	"github.com/cosumar-digital/docextract/internal/repository"
)

func TestExportXLSX(t *testing.T) {
	ctx := context.Background()
	store, err := repository.OpenLocal(ctx, filepath.Join(t.TempDir(), "extract.db"), nil)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save(ctx, repository.StoredExtraction{
		ID:         uuid.New(),
		SourcePath: "/in/cv1.pdf",
		Mode:       constants.ModeCV,
		Status:     constants.JobStatusExtracted,
		Record: entity.ExtractedRecord{
			PotentialName: "Othmane Zrioual",
			Emails:        []string{"jane@example.com", "alt@example.com"},
			Phones:        []string{"0612345678"},
			KeywordsFound: []string{"python", "sql"},
			MatchRatio:    0.5,
		},
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}))

	b, err := NewService(store, nil).ExportXLSX(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, b)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	const sheet = "Extractions"
	header, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Extracted At", header)

	name, _ := f.GetCellValue(sheet, "E2")
	assert.Equal(t, "Othmane Zrioual", name)
	email, _ := f.GetCellValue(sheet, "F2")
	assert.Equal(t, "jane@example.com", email)
	phone, _ := f.GetCellValue(sheet, "G2")
	assert.Equal(t, "0612345678", phone)
	keywords, _ := f.GetCellValue(sheet, "K2")
	assert.Equal(t, "python, sql", keywords)
}

func TestExportXLSX_EmptyStore(t *testing.T) {
	ctx := context.Background()
	store, err := repository.OpenLocal(ctx, filepath.Join(t.TempDir(), "extract.db"), nil)
	require.NoError(t, err)
	defer store.Close()

	b, err := NewService(store, nil).ExportXLSX(ctx)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Extractions")
	require.NoError(t, err)
	assert.Len(t, rows, 1) // header only
}
