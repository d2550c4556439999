package ocr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeuristicConfidence(t *testing.T) {
	assert.InDelta(t, 0.2, HeuristicConfidence("garbled"), 1e-6)
	assert.InDelta(t, 0.4, HeuristicConfidence("né le 12.03.1995"), 1e-6)
	assert.InDelta(t, 0.4, HeuristicConfidence("mail jane@example.com"), 1e-6)
	assert.InDelta(t, 0.4, HeuristicConfidence("tél 0612345678"), 1e-6)

	rich := "Jane Doe, née le 12.03.1995, jane@example.com, 0612345678. " +
		strings.Repeat("expérience ", 10)
	assert.InDelta(t, 0.9, HeuristicConfidence(rich), 1e-6)
}
