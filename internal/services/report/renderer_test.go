package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/prismbrain/prism/internal/models"
)

func sampleReport() *models.SynthesisReport {
	return &models.SynthesisReport{
		ProjectID:         "abcd1234",
		ProjectName:       "mobile-redesign",
		LastUpdated:       time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		TotalUnits:        2,
		TotalSources:      1,
		TotalContributors: 1,
		ByCategory: map[models.Category]int{
			models.CategoryPainPoint: 1, models.CategoryQuestion: 0,
			models.CategoryInsight: 0, models.CategoryActionItem: 1,
			models.CategoryQuote: 0, models.CategoryIdea: 0, models.CategoryGeneral: 0,
		},
		ByPriority: map[models.PriorityBucket]int{
			models.PriorityHigh: 1, models.PriorityMedium: 1, models.PriorityLow: 0,
		},
		ByContributor: map[string]*models.ContributorBreakdown{
			"Maya": {Total: 2, ByCategory: map[models.Category]int{models.CategoryPainPoint: 1}},
		},
		Themes: []models.Theme{{Theme: "search", Frequency: 4}},
		ActionItems: []models.ActionItem{
			{UnitID: "unit_1", Text: "TODO: fix search | filters", Contributor: "Maya", SourceName: "board-1", Priority: 0.8},
		},
		Timeline: []models.TimelineEntry{
			{Kind: models.SourceTypeFigJam, DisplayName: "board-1", AddedAt: time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC), UnitCount: 2},
		},
		SentimentDistribution: map[models.Sentiment]int{
			models.SentimentPositive: 0, models.SentimentNegative: 1, models.SentimentNeutral: 1,
		},
		AverageConfidence: 0.4,
	}
}

func TestMarkdown(t *testing.T) {
	service := NewService(arbor.NewLogger())

	md := service.Markdown(sampleReport())

	assert.Contains(t, md, "# Synthesis Report: mobile-redesign")
	assert.Contains(t, md, "## Categories")
	assert.Contains(t, md, "**pain_point**: 1")
	assert.Contains(t, md, "## Priority")
	assert.Contains(t, md, "## Top Themes")
	assert.Contains(t, md, "search (4)")
	assert.Contains(t, md, "## Action Items")
	assert.Contains(t, md, "## Timeline")
	// Pipes inside cell text are escaped so the table stays intact
	assert.Contains(t, md, `TODO: fix search \| filters`)
}

func TestMarkdown_OmitsEmptySections(t *testing.T) {
	service := NewService(arbor.NewLogger())

	report := sampleReport()
	report.Themes = nil
	report.ActionItems = nil
	report.Timeline = nil
	report.ByContributor = nil

	md := service.Markdown(report)

	assert.NotContains(t, md, "## Top Themes")
	assert.NotContains(t, md, "## Action Items")
	assert.NotContains(t, md, "## Timeline")
	assert.NotContains(t, md, "## Contributors")
}

func TestMarkdown_Deterministic(t *testing.T) {
	service := NewService(arbor.NewLogger())

	first := service.Markdown(sampleReport())
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, service.Markdown(sampleReport()))
	}
}

func TestHTML(t *testing.T) {
	service := NewService(arbor.NewLogger())

	html, err := service.HTML(sampleReport())
	require.NoError(t, err)

	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "mobile-redesign")
	assert.Contains(t, html, "<table>")
}
