package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/cosumar-digital/docextract/internal/entity"
)

// LoadKeywordProfile fetches the domain and position keyword lists for one
// open position. Table names follow the recruitment service's schema
// (Django-managed: resume_service_poste / resume_service_domaine, keywords
// stored as JSON arrays).
func LoadKeywordProfile(ctx context.Context, pool Pool, positionID int64, logger *zap.Logger) (entity.KeywordProfile, error) {
	const q = `
SELECT p.keywords, d.keywords
FROM resume_service_poste p
JOIN resume_service_domaine d ON d.id = p.domaine_id
WHERE p.id = $1`

	var posRaw, domRaw []byte
	if err := pool.QueryRow(ctx, q, positionID).Scan(&posRaw, &domRaw); err != nil {
		logger.Error("load keyword profile failed", zap.Int64("position_id", positionID), zap.Error(err))
		return entity.KeywordProfile{}, fmt.Errorf("load keyword profile: %w", err)
	}

	var profile entity.KeywordProfile
	if err := json.Unmarshal(posRaw, &profile.PositionKeywords); err != nil {
		return entity.KeywordProfile{}, fmt.Errorf("decode position keywords: %w", err)
	}
	if err := json.Unmarshal(domRaw, &profile.DomainKeywords); err != nil {
		return entity.KeywordProfile{}, fmt.Errorf("decode domain keywords: %w", err)
	}
	return profile, nil
}
