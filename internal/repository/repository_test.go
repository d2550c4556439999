package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cosumar-digital/docextract/internal/entity"
)

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		*(d.(*[]byte)) = r.values[i].([]byte)
	}
	return nil
}

type fakePool struct {
	row     fakeRow
	gotSQL  string
	gotArgs []any

	execTag pgconn.CommandTag
	execErr error
}

func (p *fakePool) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	p.gotSQL, p.gotArgs = sql, args
	return p.row
}

func (p *fakePool) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	p.gotSQL, p.gotArgs = sql, args
	return p.execTag, p.execErr
}

func TestLoadKeywordProfile(t *testing.T) {
	pool := &fakePool{row: fakeRow{values: []any{
		[]byte(`["django","sql"]`),
		[]byte(`["python","django","sql","docker"]`),
	}}}

	profile, err := LoadKeywordProfile(context.Background(), pool, 42, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{"django", "sql"}, profile.PositionKeywords)
	assert.Equal(t, []string{"python", "django", "sql", "docker"}, profile.DomainKeywords)
	assert.Equal(t, []any{int64(42)}, pool.gotArgs)
	assert.Contains(t, pool.gotSQL, "resume_service_poste")
	assert.Contains(t, pool.gotSQL, "resume_service_domaine")
}

func TestLoadKeywordProfile_QueryError(t *testing.T) {
	pool := &fakePool{row: fakeRow{err: pgx.ErrNoRows}}

	_, err := LoadKeywordProfile(context.Background(), pool, 42, zap.NewNop())
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestLoadKeywordProfile_BadJSON(t *testing.T) {
	pool := &fakePool{row: fakeRow{values: []any{
		[]byte(`not json`),
		[]byte(`[]`),
	}}}

	_, err := LoadKeywordProfile(context.Background(), pool, 42, zap.NewNop())
	assert.Error(t, err)
}

func TestSaveExtraction(t *testing.T) {
	pool := &fakePool{execTag: pgconn.NewCommandTag("UPDATE 1")}
	rec := &entity.ExtractedRecord{CIN: "A123456", MatchRatio: 0}

	err := SaveExtraction(context.Background(), pool, 7, rec, zap.NewNop())
	require.NoError(t, err)

	assert.Contains(t, pool.gotSQL, "resume_service_candidature")
	require.Len(t, pool.gotArgs, 2)
	assert.Equal(t, int64(7), pool.gotArgs[0])
	assert.JSONEq(t, `{"cin":"A123456","match_ratio":0}`, string(pool.gotArgs[1].([]byte)))
}

func TestSaveExtraction_ApplicationMissing(t *testing.T) {
	pool := &fakePool{execTag: pgconn.NewCommandTag("UPDATE 0")}

	err := SaveExtraction(context.Background(), pool, 7, &entity.ExtractedRecord{}, zap.NewNop())
	assert.Error(t, err)
}

func TestSaveExtraction_InvalidRecordNeverReachesDatabase(t *testing.T) {
	pool := &fakePool{execTag: pgconn.NewCommandTag("UPDATE 1")}
	rec := &entity.ExtractedRecord{CIN: "not-a-cin"}

	err := SaveExtraction(context.Background(), pool, 7, rec, zap.NewNop())
	assert.Error(t, err)
	assert.Empty(t, pool.gotSQL)
}

func TestSaveExtraction_ExecError(t *testing.T) {
	pool := &fakePool{execErr: errors.New("connection reset")}

	err := SaveExtraction(context.Background(), pool, 7, &entity.ExtractedRecord{}, zap.NewNop())
	assert.Error(t, err)
}
