package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/cosumar-digital/docextract/internal/entity"
)

// SaveExtraction writes the finished record back onto the application row it
// belongs to. The record is schema-validated before touching the database so
// a malformed mapping never lands in the JSON column.
func SaveExtraction(ctx context.Context, pool Pool, applicationID int64, record *entity.ExtractedRecord, logger *zap.Logger) error {
	b, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("serialize record: %w", err)
	}
	if err := entity.ValidateRecordJSON(b); err != nil {
		return fmt.Errorf("validate record: %w", err)
	}

	const q = `
UPDATE resume_service_candidature
SET extracted_data = $2
WHERE id = $1`

	tag, err := pool.Exec(ctx, q, applicationID, b)
	if err != nil {
		logger.Error("save extraction failed", zap.Int64("application_id", applicationID), zap.Error(err))
		return fmt.Errorf("save extraction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("application %d not found", applicationID)
	}

	logger.Info("extraction saved",
		zap.Int64("application_id", applicationID),
		zap.Int("record_bytes", len(b)),
	)
	return nil
}
