package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ternarybob/arbor"

	"github.com/prismbrain/prism/internal/models"
)

func TestClassify_Category(t *testing.T) {
	service := NewService(arbor.NewLogger())

	tests := []struct {
		name string
		text string
		want models.Category
	}{
		{
			name: "Pain point wins over question mark",
			text: "Why is the export broken?",
			want: models.CategoryPainPoint,
		},
		{
			name: "Question",
			text: "How do users discover the search feature?",
			want: models.CategoryQuestion,
		},
		{
			name: "Insight from multi-word keyword",
			text: "users love the new layout",
			want: models.CategoryInsight,
		},
		{
			name: "Action item from todo marker",
			text: "TODO: schedule user tests ASAP",
			want: models.CategoryActionItem,
		},
		{
			name: "Quote from double quote character",
			text: "\"I just gave up after the second step\"",
			want: models.CategoryQuote,
		},
		{
			name: "Idea",
			text: "Brainstorm a lighter signup flow",
			want: models.CategoryIdea,
		},
		{
			name: "Fallback to general",
			text: "Team reviewed the dashboard last sprint",
			want: models.CategoryGeneral,
		},
		{
			name: "Empty text falls back to general",
			text: "",
			want: models.CategoryGeneral,
		},
		{
			name: "Matching is case-insensitive",
			text: "FRUSTRATED with the settings page",
			want: models.CategoryPainPoint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.Classify(tt.text, models.SourceKindBoardSticky)
			assert.Equal(t, tt.want, got.Category)
		})
	}
}

func TestClassify_Priority(t *testing.T) {
	service := NewService(arbor.NewLogger())

	tests := []struct {
		name string
		text string
		want float64
	}{
		{
			name: "Base score for plain text",
			text: "Team reviewed the dashboard last sprint",
			want: 0.3,
		},
		{
			name: "Single top bonus",
			text: "TODO: schedule user tests ASAP",
			want: 0.7,
		},
		{
			name: "All bonuses clamp to one",
			text: "This is URGENT, the login is broken and must be fixed ASAP",
			want: 1.0,
		},
		{
			name: "Repeated keywords in one group count once",
			text: "urgent urgent urgent",
			want: 0.7,
		},
		{
			name: "Middle and low bonuses stack",
			text: "Please fix the broken filter",
			want: 0.6,
		},
		{
			name: "Empty text gets base score",
			text: "",
			want: 0.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.Classify(tt.text, models.SourceKindBoardSticky)
			assert.InDelta(t, tt.want, got.Priority, 1e-9)
		})
	}
}

func TestClassify_Sentiment(t *testing.T) {
	service := NewService(arbor.NewLogger())

	tests := []struct {
		name string
		text string
		want models.Sentiment
	}{
		{
			name: "Positive majority",
			text: "The new search is great and really easy to use",
			want: models.SentimentPositive,
		},
		{
			name: "Negative majority",
			text: "This is URGENT, the login is broken and must be fixed ASAP",
			want: models.SentimentNegative,
		},
		{
			name: "No matches is neutral",
			text: "TODO: schedule user tests ASAP",
			want: models.SentimentNeutral,
		},
		{
			name: "Tie is neutral",
			text: "I love it but the export is broken",
			want: models.SentimentNeutral,
		},
		{
			name: "Occurrences count, not word presence",
			text: "broken broken but I love it",
			want: models.SentimentNegative,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.Classify(tt.text, models.SourceKindBoardSticky)
			assert.Equal(t, tt.want, got.Sentiment)
		})
	}
}

func TestClassify_Tags(t *testing.T) {
	service := NewService(arbor.NewLogger())

	t.Run("Tags collected in table order", func(t *testing.T) {
		got := service.Classify("The mobile menu loading is slow", models.SourceKindBoardSticky)
		assert.Equal(t, []string{"navigation", "performance", "mobile"}, got.Tags)
	})

	t.Run("Tag count capped", func(t *testing.T) {
		text := "usability of the nav menu design is slow on mobile with bad contrast during onboarding"
		got := service.Classify(text, models.SourceKindBoardSticky)
		assert.Len(t, got.Tags, models.MaxTags)
	})

	t.Run("No matches gives empty slice", func(t *testing.T) {
		got := service.Classify("Team reviewed the dashboard last sprint", models.SourceKindBoardSticky)
		assert.Empty(t, got.Tags)
	})
}

func TestClassify_ToneAudioOnly(t *testing.T) {
	service := NewService(arbor.NewLogger())
	text := "I'm really not sure about this!"

	audio := service.Classify(text, models.SourceKindAudioSegment)
	assert.Equal(t, models.ToneEmphatic, audio.Tone)

	board := service.Classify(text, models.SourceKindBoardSticky)
	assert.Empty(t, board.Tone)

	document := service.Classify(text, models.SourceKindDocumentParagraph)
	assert.Empty(t, document.Tone)
}

func TestClassify_ToneGroups(t *testing.T) {
	service := NewService(arbor.NewLogger())

	tests := []struct {
		name string
		text string
		want models.Tone
	}{
		{"Emphatic beats questioning", "really, how does this work?", models.ToneEmphatic},
		{"Questioning", "how does this work", models.ToneQuestioning},
		{"Hesitant", "maybe we ship it later", models.ToneHesitant},
		{"Concerned", "worried about data loss", models.ToneConcerned},
		{"Positive", "excited about the redesign", models.TonePositive},
		{"Neutral fallback", "the dashboard loads", models.ToneNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.Classify(tt.text, models.SourceKindAudioSegment)
			assert.Equal(t, tt.want, got.Tone)
		})
	}
}

func TestClassify_FixedConfidence(t *testing.T) {
	service := NewService(arbor.NewLogger())

	for _, text := range []string{"", "urgent broken error", "users love it"} {
		got := service.Classify(text, models.SourceKindBoardSticky)
		assert.Equal(t, models.RuleConfidence, got.Confidence)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	service := NewService(arbor.NewLogger())
	text := "This is URGENT, the login is broken and must be fixed ASAP"

	first := service.Classify(text, models.SourceKindAudioSegment)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, service.Classify(text, models.SourceKindAudioSegment))
	}
}
