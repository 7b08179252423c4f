package classifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/prismbrain/prism/internal/models"
)

const sampleRulesYAML = `
categories:
  - category: pain_point
    keywords: ["Blocked", "stuck"]
  - category: idea
    keywords: ["spike"]
priority:
  base: 0.2
  bonuses:
    - weight: 0.5
      keywords: ["blocker"]
sentiment:
  positive: ["shipped", "green"]
  negative: ["blocked", "red"]
tags:
  - tag: infra
    keywords: ["pipeline", "deploy"]
tones:
  - tone: concerned
    keywords: ["blocked"]
`

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRules(t *testing.T) {
	rules, err := LoadRules(writeRules(t, sampleRulesYAML))
	require.NoError(t, err)

	// Keywords are normalized to lower case on load
	assert.Equal(t, []string{"blocked", "stuck"}, rules.Categories[0].Keywords)

	service := NewServiceWithRules(rules, arbor.NewLogger())

	got := service.Classify("BLOCKED on the deploy pipeline", models.SourceKindBoardSticky)
	assert.Equal(t, models.CategoryPainPoint, got.Category)
	assert.InDelta(t, 0.2, got.Priority, 1e-9)
	assert.Equal(t, models.SentimentNegative, got.Sentiment)
	assert.Equal(t, []string{"infra"}, got.Tags)
}

func TestLoadRules_MissingFile(t *testing.T) {
	_, err := LoadRules("/nonexistent/rules.yaml")
	assert.Error(t, err)
}

func TestLoadRules_RejectsPartialTables(t *testing.T) {
	partial := `
categories:
  - category: pain_point
    keywords: ["blocked"]
`
	_, err := LoadRules(writeRules(t, partial))
	assert.Error(t, err)
}

func TestLoadRules_RejectsInvalidYAML(t *testing.T) {
	_, err := LoadRules(writeRules(t, "categories: ["))
	assert.Error(t, err)
}

func TestDefaultRulesValidate(t *testing.T) {
	assert.NoError(t, DefaultRules().Validate())
}
