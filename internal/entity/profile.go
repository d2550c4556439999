package entity

// KeywordProfile carries the two-tier reference vocabulary a candidate is
// scored against: a broad domain list (e.g. "informatique") and the narrower
// keyword list of one open position. Read-only for the pipeline.
type KeywordProfile struct {
	DomainKeywords   []string `json:"domain_keywords"`
	PositionKeywords []string `json:"position_keywords"`
}
