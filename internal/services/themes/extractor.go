package themes

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ternarybob/arbor"

	"github.com/prismbrain/prism/internal/models"
)

const (
	// MaxThemes caps the ranked theme list
	MaxThemes = 10
	// MinWordLength is the shortest token counted as a theme candidate
	MinWordLength = 4
)

// stopwords are excluded from theme counting
var stopwords = map[string]bool{
	"that": true,
	"this": true,
	"with": true,
	"from": true,
	"have": true,
	"been": true,
}

// Service extracts ranked themes from a project's corpus. The analysis is
// intentionally corpus-wide rather than per-source and is recomputed fully
// on every synthesis request; there is no incremental state to invalidate
// under appends.
type Service struct {
	logger arbor.ILogger
}

// NewService creates a new theme extraction service
func NewService(logger arbor.ILogger) *Service {
	return &Service{logger: logger}
}

// Extract tokenizes every unit's text into case-folded words of length >= 4,
// accumulates corpus-wide frequencies and returns the top themes by count.
// Ties keep first-encountered order, so the result is deterministic for a
// given unit ordering.
func (s *Service) Extract(units []*models.ContentUnit) []models.Theme {
	counts := make(map[string]int)
	order := []string{} // first-encounter order for stable tie-breaks

	for _, unit := range units {
		for _, word := range tokenize(unit.Text) {
			if utf8.RuneCountInString(word) < MinWordLength || stopwords[word] {
				continue
			}
			if _, seen := counts[word]; !seen {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	n := len(order)
	if n > MaxThemes {
		n = MaxThemes
	}

	ranked := make([]models.Theme, 0, n)
	for _, word := range order[:n] {
		ranked = append(ranked, models.Theme{Theme: word, Frequency: counts[word]})
	}
	return ranked
}

// tokenize splits text into lowercased alphanumeric runs
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
