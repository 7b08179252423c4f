package themes

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ternarybob/arbor"

	"github.com/prismbrain/prism/internal/models"
)

func unit(text string) *models.ContentUnit {
	return &models.ContentUnit{Text: text}
}

func TestExtract_CountsAndRanking(t *testing.T) {
	service := NewService(arbor.NewLogger())

	units := []*models.ContentUnit{
		unit("Search search SEARCH"),
		unit("navigation and search"),
		unit("navigation layout"),
	}

	themes := service.Extract(units)

	assert.Equal(t, []models.Theme{
		{Theme: "search", Frequency: 4},
		{Theme: "navigation", Frequency: 2},
		{Theme: "layout", Frequency: 1},
	}, themes)
}

func TestExtract_ShortWordsAndStopwordsExcluded(t *testing.T) {
	service := NewService(arbor.NewLogger())

	units := []*models.ContentUnit{
		unit("this that with from have been nav ok"),
	}

	assert.Empty(t, service.Extract(units))
}

func TestExtract_MinLengthCountsRunes(t *testing.T) {
	service := NewService(arbor.NewLogger())

	// "für" is 4 bytes but 3 runes; "café" is 4 runes
	units := []*models.ContentUnit{
		unit("für café für café"),
	}

	themes := service.Extract(units)

	assert.Equal(t, []models.Theme{
		{Theme: "café", Frequency: 2},
	}, themes)
}

func TestExtract_TieBreakKeepsFirstEncounterOrder(t *testing.T) {
	service := NewService(arbor.NewLogger())

	units := []*models.ContentUnit{
		unit("zebra apple"),
		unit("zebra apple"),
	}

	themes := service.Extract(units)

	assert.Equal(t, []models.Theme{
		{Theme: "zebra", Frequency: 2},
		{Theme: "apple", Frequency: 2},
	}, themes)
}

func TestExtract_CapsAtTen(t *testing.T) {
	service := NewService(arbor.NewLogger())

	units := []*models.ContentUnit{}
	for i := 0; i < 15; i++ {
		// word00 word00, word01 word01... later words more frequent
		word := fmt.Sprintf("word%02d", i)
		for j := 0; j <= i; j++ {
			units = append(units, unit(word))
		}
	}

	themes := service.Extract(units)

	assert.Len(t, themes, MaxThemes)
	assert.Equal(t, "word14", themes[0].Theme)
	assert.Equal(t, 15, themes[0].Frequency)
	assert.Equal(t, "word05", themes[MaxThemes-1].Theme)
}

func TestExtract_PunctuationSplitsTokens(t *testing.T) {
	service := NewService(arbor.NewLogger())

	units := []*models.ContentUnit{
		unit("export-flow export_flow export, flow!"),
	}

	themes := service.Extract(units)

	assert.Equal(t, []models.Theme{
		{Theme: "export", Frequency: 3},
		{Theme: "flow", Frequency: 3},
	}, themes)
}

func TestExtract_EmptyCorpus(t *testing.T) {
	service := NewService(arbor.NewLogger())
	assert.Empty(t, service.Extract(nil))
}
