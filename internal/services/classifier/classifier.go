package classifier

import (
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/prismbrain/prism/internal/models"
)

// Service is the rule-based content classifier. It is a pure function over
// unit text: stateless, deterministic, and it never fails - unrecognized or
// empty input degrades to the safest defaults (general / base priority /
// neutral / no tags) instead of erroring. Classification of a batch is
// therefore safe to fan out across goroutines.
type Service struct {
	rules  *Rules
	logger arbor.ILogger
}

// NewService creates a classifier with the built-in rule tables
func NewService(logger arbor.ILogger) *Service {
	return NewServiceWithRules(DefaultRules(), logger)
}

// NewServiceWithRules creates a classifier with custom rule tables
func NewServiceWithRules(rules *Rules, logger arbor.ILogger) *Service {
	return &Service{
		rules:  rules,
		logger: logger,
	}
}

// Classify derives category, priority, sentiment, tags and (for audio
// sources) tone from the unit text. Confidence is fixed: keyword rules
// carry no per-unit certainty signal.
func (s *Service) Classify(text string, kind models.SourceKind) models.Classification {
	lower := strings.ToLower(text)

	c := models.Classification{
		Category:   s.category(lower),
		Priority:   s.priority(lower),
		Sentiment:  s.sentiment(lower),
		Tags:       s.tags(lower),
		Confidence: models.RuleConfidence,
	}

	// Tone is derived for audio units only; board and document text has no
	// prosody to read tone from.
	if kind == models.SourceKindAudioSegment {
		c.Tone = s.tone(lower)
	}

	return c
}

// category returns the first matching category in rule order, or general
func (s *Service) category(lower string) models.Category {
	for _, rule := range s.rules.Categories {
		if containsAny(lower, rule.Keywords) {
			return rule.Category
		}
	}
	return models.CategoryGeneral
}

// priority starts at the base score and adds each matching bonus
// independently, clamped to [0, 1]
func (s *Service) priority(lower string) float64 {
	score := s.rules.Priority.Base
	for _, bonus := range s.rules.Priority.Bonuses {
		if containsAny(lower, bonus.Keywords) {
			score += bonus.Weight
		}
	}
	if score > 1.0 {
		score = 1.0
	}
	if score < 0.0 {
		score = 0.0
	}
	return score
}

// sentiment counts substring occurrences of the positive vs negative word
// lists; the majority wins and ties are neutral
func (s *Service) sentiment(lower string) models.Sentiment {
	pos := countOccurrences(lower, s.rules.Sentiment.Positive)
	neg := countOccurrences(lower, s.rules.Sentiment.Negative)

	switch {
	case pos > neg:
		return models.SentimentPositive
	case neg > pos:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

// tags collects matching tag categories in table order, capped at MaxTags
func (s *Service) tags(lower string) []string {
	tags := []string{}
	for _, rule := range s.rules.Tags {
		if containsAny(lower, rule.Keywords) {
			tags = append(tags, rule.Tag)
			if len(tags) >= models.MaxTags {
				break
			}
		}
	}
	return tags
}

// tone returns the first matching tone group in rule order, or neutral
func (s *Service) tone(lower string) models.Tone {
	for _, rule := range s.rules.Tones {
		if containsAny(lower, rule.Keywords) {
			return rule.Tone
		}
	}
	return models.ToneNeutral
}

// containsAny reports whether any keyword is a substring of the text
func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// countOccurrences sums the substring occurrence counts of every word
func countOccurrences(lower string, words []string) int {
	total := 0
	for _, w := range words {
		if w != "" {
			total += strings.Count(lower, w)
		}
	}
	return total
}
