package models

import (
	"encoding/gob"
	"time"
)

func init() {
	// Register origin metadata value types with gob for BadgerDB
	// serialization. Origin is map[string]interface{}; gob only encodes
	// interface-carried values whose concrete type is registered.
	gob.Register(map[string]float64{}) // board node position
}

// SourceKind identifies the origin of a content unit
type SourceKind string

const (
	SourceKindBoardSticky       SourceKind = "board_sticky"
	SourceKindBoardText         SourceKind = "board_text"
	SourceKindBoardConnection   SourceKind = "board_connection"
	SourceKindAudioSegment      SourceKind = "audio_segment"
	SourceKindDocumentParagraph SourceKind = "document_paragraph"
)

// Category is the semantic bucket assigned by the classifier
type Category string

const (
	CategoryPainPoint  Category = "pain_point"
	CategoryQuestion   Category = "question"
	CategoryInsight    Category = "insight"
	CategoryActionItem Category = "action_item"
	CategoryQuote      Category = "quote"
	CategoryIdea       Category = "idea"
	CategoryGeneral    Category = "general"
)

// Categories lists all classifier categories in classification order,
// with the fallback last
var Categories = []Category{
	CategoryPainPoint,
	CategoryQuestion,
	CategoryInsight,
	CategoryActionItem,
	CategoryQuote,
	CategoryIdea,
	CategoryGeneral,
}

// Sentiment of a content unit's text
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Sentiments lists all sentiment values
var Sentiments = []Sentiment{SentimentPositive, SentimentNegative, SentimentNeutral}

// Tone is the speaker tone detected for audio-sourced units.
// Tone detection applies to audio units only: audio carries prosody cues
// (emphasis, hesitation) that board and document text does not, so the
// asymmetry is deliberate rather than an omission.
type Tone string

const (
	ToneEmphatic    Tone = "emphatic"
	ToneQuestioning Tone = "questioning"
	ToneHesitant    Tone = "hesitant"
	ToneConcerned   Tone = "concerned"
	TonePositive    Tone = "positive"
	ToneNeutral     Tone = "neutral"
)

// StickyColor is the fill color reported by the board collaborator.
// Carried through as origin metadata only; classification is text-only.
type StickyColor string

const (
	ColorRed    StickyColor = "RED"
	ColorBlue   StickyColor = "BLUE"
	ColorGreen  StickyColor = "GREEN"
	ColorYellow StickyColor = "YELLOW"
	ColorPurple StickyColor = "PURPLE"
	ColorPink   StickyColor = "PINK"
	ColorOrange StickyColor = "ORANGE"
	ColorGray   StickyColor = "GRAY"
	ColorText   StickyColor = "TEXT"
)

// RuleConfidence is the fixed confidence assigned to every rule-based
// classification. Keyword matching gives no per-unit certainty signal,
// so all results carry the same conservative value.
const RuleConfidence = 0.4

// MaxTags caps the number of tags attached to a single unit
const MaxTags = 5

// Classification holds the derived fields filled in by the classifier.
// A unit is classified exactly once per ingestion; re-classification
// produces a fresh Classification, never mutates unit identity.
type Classification struct {
	Category   Category  `json:"category"`
	Priority   float64   `json:"priority"` // 0.0 - 1.0
	Sentiment  Sentiment `json:"sentiment"`
	Tags       []string  `json:"tags"`
	Confidence float64   `json:"confidence"`
	Tone       Tone      `json:"tone,omitempty"` // audio units only
}

// ContentUnit is one atomic item of research data from any source
type ContentUnit struct {
	ID          string                 `json:"id"` // unit_{uuid}
	Text        string                 `json:"text"`
	SourceKind  SourceKind             `json:"source_kind"`
	SourceName  string                 `json:"source_name"`
	Contributor string                 `json:"contributor"` // "Unknown" when unavailable
	CreatedAt   time.Time              `json:"created_at"`  // ingestion time, not authorship
	Origin      map[string]interface{} `json:"origin_metadata,omitempty"`

	Classification *Classification `json:"classification,omitempty"`
}

// IsAudio reports whether the unit came from an audio source
func (u *ContentUnit) IsAudio() bool {
	return u.SourceKind == SourceKindAudioSegment
}

// Connection is a board relationship (arrow) between two units.
// Connections carry no text and are never classified.
type Connection struct {
	From         string `json:"from"`
	To           string `json:"to"`
	Relationship string `json:"relationship"` // e.g. "connects_to"
	SourceName   string `json:"source_name"`
}
