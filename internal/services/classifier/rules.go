package classifier

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/prismbrain/prism/internal/models"
)

// CategoryRule is one ordered category keyword set. Order is the tie-break
// policy: the first matching rule wins.
type CategoryRule struct {
	Category models.Category `yaml:"category"`
	Keywords []string        `yaml:"keywords"`
}

// PriorityBonus adds Weight to the priority score when any keyword matches
type PriorityBonus struct {
	Weight   float64  `yaml:"weight"`
	Keywords []string `yaml:"keywords"`
}

// PriorityRules scores priority additively from a base value
type PriorityRules struct {
	Base    float64         `yaml:"base"`
	Bonuses []PriorityBonus `yaml:"bonuses"`
}

// SentimentRules holds the positive and negative word lists
type SentimentRules struct {
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
}

// TagRule maps one tag to its keyword list
type TagRule struct {
	Tag      string   `yaml:"tag"`
	Keywords []string `yaml:"keywords"`
}

// ToneRule is one ordered tone keyword group (audio units only)
type ToneRule struct {
	Tone     models.Tone `yaml:"tone"`
	Keywords []string    `yaml:"keywords"`
}

// Rules holds every keyword table the classifier consults. All matching is
// case-insensitive substring matching over the lowercased unit text.
type Rules struct {
	Categories []CategoryRule `yaml:"categories"`
	Priority   PriorityRules  `yaml:"priority"`
	Sentiment  SentimentRules `yaml:"sentiment"`
	Tags       []TagRule      `yaml:"tags"`
	Tones      []ToneRule     `yaml:"tones"`
}

// DefaultRules returns the built-in rule tables. Pain points are checked
// first so explicit problem language is never masked by a trailing question
// mark; quotes come after structural action markers so a quoted pain point
// still surfaces as actionable.
func DefaultRules() *Rules {
	return &Rules{
		Categories: []CategoryRule{
			{Category: models.CategoryPainPoint, Keywords: []string{"frustrated", "problem", "issue", "difficult", "confusing", "error", "broken"}},
			{Category: models.CategoryQuestion, Keywords: []string{"how", "what", "why", "should", "?"}},
			{Category: models.CategoryInsight, Keywords: []string{"finding", "discovered", "noticed", "observed", "users love", "works well"}},
			{Category: models.CategoryActionItem, Keywords: []string{"todo", "action", "must", "need to", "should complete", "[]"}},
			{Category: models.CategoryQuote, Keywords: []string{"\"", "said", "quote"}},
			{Category: models.CategoryIdea, Keywords: []string{"idea", "what if", "consider", "brainstorm", "concept"}},
		},
		Priority: PriorityRules{
			Base: 0.3,
			Bonuses: []PriorityBonus{
				{Weight: 0.4, Keywords: []string{"urgent", "asap", "critical", "must", "immediately"}},
				{Weight: 0.2, Keywords: []string{"broken", "error", "frustrated", "failing"}},
				{Weight: 0.1, Keywords: []string{"fix", "resolve", "address", "complete"}},
			},
		},
		Sentiment: SentimentRules{
			Positive: []string{"love", "great", "excellent", "perfect", "works well", "helpful", "easy"},
			Negative: []string{"hate", "frustrated", "difficult", "confusing", "problem", "error", "broken"},
		},
		Tags: []TagRule{
			{Tag: "usability", Keywords: []string{"usability", "intuitive", "user-friendly", "easy to use", "hard to use"}},
			{Tag: "navigation", Keywords: []string{"navigation", "nav", "menu", "breadcrumb"}},
			{Tag: "design", Keywords: []string{"design", "layout", "visual", "styling"}},
			{Tag: "performance", Keywords: []string{"slow", "fast", "loading", "performance", "lag"}},
			{Tag: "accessibility", Keywords: []string{"accessibility", "a11y", "contrast", "screen reader"}},
			{Tag: "mobile", Keywords: []string{"mobile", "phone", "tablet", "responsive"}},
			{Tag: "onboarding", Keywords: []string{"onboarding", "signup", "sign up", "first time", "tutorial"}},
		},
		Tones: []ToneRule{
			{Tone: models.ToneEmphatic, Keywords: []string{"!", "really", "absolutely", "definitely"}},
			{Tone: models.ToneQuestioning, Keywords: []string{"?", "how", "what", "why"}},
			{Tone: models.ToneHesitant, Keywords: []string{"maybe", "perhaps", "not sure", "possibly"}},
			{Tone: models.ToneConcerned, Keywords: []string{"worried", "concerned", "afraid", "risk"}},
			{Tone: models.TonePositive, Keywords: []string{"love", "great", "excellent", "excited"}},
		},
	}
}

// LoadRules reads a full rule-table override from a YAML file.
// Partial files are rejected; a deployment either owns the whole table
// or uses the defaults.
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}

	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}

	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules file %s: %w", path, err)
	}

	rules.normalize()

	return &rules, nil
}

// Validate checks that every rule table is populated
func (r *Rules) Validate() error {
	if len(r.Categories) == 0 {
		return fmt.Errorf("categories table is empty")
	}
	for _, c := range r.Categories {
		if len(c.Keywords) == 0 {
			return fmt.Errorf("category %q has no keywords", c.Category)
		}
	}
	if r.Priority.Base < 0 || r.Priority.Base > 1 {
		return fmt.Errorf("priority base %v out of range [0,1]", r.Priority.Base)
	}
	if len(r.Priority.Bonuses) == 0 {
		return fmt.Errorf("priority bonuses table is empty")
	}
	if len(r.Sentiment.Positive) == 0 || len(r.Sentiment.Negative) == 0 {
		return fmt.Errorf("sentiment word lists must be populated")
	}
	if len(r.Tags) == 0 {
		return fmt.Errorf("tags table is empty")
	}
	if len(r.Tones) == 0 {
		return fmt.Errorf("tones table is empty")
	}
	return nil
}

// normalize lowercases every keyword so matching stays case-insensitive
// regardless of how the file was written
func (r *Rules) normalize() {
	for i := range r.Categories {
		lowerAll(r.Categories[i].Keywords)
	}
	for i := range r.Priority.Bonuses {
		lowerAll(r.Priority.Bonuses[i].Keywords)
	}
	lowerAll(r.Sentiment.Positive)
	lowerAll(r.Sentiment.Negative)
	for i := range r.Tags {
		lowerAll(r.Tags[i].Keywords)
	}
	for i := range r.Tones {
		lowerAll(r.Tones[i].Keywords)
	}
}

func lowerAll(words []string) {
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
}
