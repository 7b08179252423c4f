package models

import (
	"time"
)

// PriorityBucket is the coarse partition of the continuous priority score
type PriorityBucket string

const (
	PriorityHigh   PriorityBucket = "high"   // priority > 0.7
	PriorityMedium PriorityBucket = "medium" // 0.4 <= priority <= 0.7
	PriorityLow    PriorityBucket = "low"    // priority < 0.4
)

// PriorityBuckets lists the buckets in display order
var PriorityBuckets = []PriorityBucket{PriorityHigh, PriorityMedium, PriorityLow}

// BucketFor assigns a priority score to exactly one bucket.
// Boundary values 0.4 and 0.7 both fall into medium.
func BucketFor(priority float64) PriorityBucket {
	switch {
	case priority > 0.7:
		return PriorityHigh
	case priority < 0.4:
		return PriorityLow
	default:
		return PriorityMedium
	}
}

// Theme is a frequently occurring word across a project's corpus
type Theme struct {
	Theme     string `json:"theme"`
	Frequency int    `json:"frequency"`
}

// ActionItem is the report view of an action_item unit
type ActionItem struct {
	UnitID      string  `json:"unit_id"`
	Text        string  `json:"text"`
	Contributor string  `json:"contributor"`
	SourceName  string  `json:"source_name"`
	Priority    float64 `json:"priority"`
}

// TimelineEntry is one ingestion event on the project timeline
type TimelineEntry struct {
	Kind        SourceType `json:"kind"`
	DisplayName string     `json:"display_name"`
	AddedAt     time.Time  `json:"added_at"`
	UnitCount   int        `json:"unit_count"`
}

// ContributorBreakdown counts a contributor's units overall and per category
type ContributorBreakdown struct {
	Total      int              `json:"total"`
	ByCategory map[Category]int `json:"by_category"`
}

// SynthesisReport is the aggregated view over a project's current state.
// It is recomputed on every request and never persisted; LastUpdated echoes
// the project's last mutation time so repeated synthesis of unchanged state
// yields an identical report.
type SynthesisReport struct {
	ProjectID   string    `json:"project_id"`
	ProjectName string    `json:"project_name"`
	LastUpdated time.Time `json:"last_updated"`

	TotalUnits        int `json:"total_units"`
	TotalSources      int `json:"total_sources"`
	TotalContributors int `json:"total_contributors"`
	TotalConnections  int `json:"total_connections"`

	ByCategory    map[Category]int                 `json:"by_category"`
	ByPriority    map[PriorityBucket]int           `json:"by_priority"`
	ByContributor map[string]*ContributorBreakdown `json:"by_contributor"`

	Themes      []Theme         `json:"themes"`
	ActionItems []ActionItem    `json:"action_items"`
	Timeline    []TimelineEntry `json:"timeline"`

	SentimentDistribution map[Sentiment]int `json:"sentiment_distribution"`
	AverageConfidence     float64           `json:"average_confidence"`
}
