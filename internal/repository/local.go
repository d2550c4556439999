package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/cosumar-digital/docextract/constants"
	"github.com/cosumar-digital/docextract/internal/entity"
)

// LocalStore keeps extraction results in a local sqlite file when no
// Postgres DSN is configured (batch runs, offline use, exports).
type LocalStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// StoredExtraction is one persisted pipeline run.
type StoredExtraction struct {
	ID         uuid.UUID
	SourcePath string
	Mode       string
	Status     constants.JobStatus
	Record     entity.ExtractedRecord
	CreatedAt  time.Time
}

func OpenLocal(ctx context.Context, path string, logger *zap.Logger) (*LocalStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	s := &LocalStore{db: db, logger: logger}
	if err := s.init(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.Info("local store ready", zap.String("path", path))
	return s, nil
}

func (s *LocalStore) init(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS extraction (
	id          TEXT PRIMARY KEY,
	source_path TEXT NOT NULL,
	mode        TEXT NOT NULL,
	status      TEXT NOT NULL,
	record      TEXT NOT NULL,
	created_at  TIMESTAMP NOT NULL
)`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("init local store: %w", err)
	}
	return nil
}

func (s *LocalStore) Save(ctx context.Context, e StoredExtraction) error {
	b, err := json.Marshal(e.Record)
	if err != nil {
		return fmt.Errorf("serialize record: %w", err)
	}
	if err := entity.ValidateRecordJSON(b); err != nil {
		return fmt.Errorf("validate record: %w", err)
	}

	const q = `
INSERT OR REPLACE INTO extraction (id, source_path, mode, status, record, created_at)
VALUES (?, ?, ?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, q,
		e.ID.String(), e.SourcePath, e.Mode, string(e.Status), string(b), e.CreatedAt.UTC(),
	); err != nil {
		s.logger.Error("save extraction failed", zap.String("id", e.ID.String()), zap.Error(err))
		return fmt.Errorf("save extraction: %w", err)
	}
	return nil
}

// List returns stored extractions, newest first.
func (s *LocalStore) List(ctx context.Context) ([]StoredExtraction, error) {
	const q = `
SELECT id, source_path, mode, status, record, created_at
FROM extraction
ORDER BY created_at DESC`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list extractions: %w", err)
	}
	defer rows.Close()

	var out []StoredExtraction
	for rows.Next() {
		var (
			e         StoredExtraction
			id        string
			status    string
			recordRaw string
		)
		if err := rows.Scan(&id, &e.SourcePath, &e.Mode, &status, &recordRaw, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan extraction: %w", err)
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			s.logger.Warn("skipping row with bad id", zap.String("id", id))
			continue
		}
		e.ID = parsed
		e.Status = constants.JobStatus(status)
		if err := json.Unmarshal([]byte(recordRaw), &e.Record); err != nil {
			s.logger.Warn("skipping row with bad record", zap.String("id", id), zap.Error(err))
			continue
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *LocalStore) Close() error {
	return s.db.Close()
}
