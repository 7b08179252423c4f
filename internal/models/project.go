package models

import (
	"sort"
	"time"
)

// SourceType identifies an ingestion channel
type SourceType string

const (
	SourceTypeFigJam   SourceType = "figjam"
	SourceTypeAudio    SourceType = "audio"
	SourceTypeDocument SourceType = "document"
)

// SourceRecord describes one ingestion event. Immutable once created.
type SourceRecord struct {
	Kind        SourceType `json:"kind"`
	DisplayName string     `json:"display_name"`
	AddedAt     time.Time  `json:"added_at"`
	UnitCount   int        `json:"unit_count"`
}

// Project groups content units, sources and contributors for one piece of
// research work. Units are append-only and keep insertion order so timeline
// and theme tie-breaks stay deterministic. The contributor set never shrinks.
type Project struct {
	ID          string          `json:"id" badgerhold:"key"` // 8 lowercase hex chars, derived from Name
	Name        string          `json:"name" badgerhold:"index"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Sources     []SourceRecord  `json:"sources"`
	Units       []*ContentUnit  `json:"units"`
	Connections []Connection    `json:"connections"`
	Contributor map[string]bool `json:"contributors"`
}

// NewProject creates an empty project with the given identity
func NewProject(id, name string, now time.Time) *Project {
	return &Project{
		ID:          id,
		Name:        name,
		CreatedAt:   now,
		UpdatedAt:   now,
		Sources:     []SourceRecord{},
		Units:       []*ContentUnit{},
		Connections: []Connection{},
		Contributor: map[string]bool{},
	}
}

// ContributorNames returns the distinct contributor names in sorted order
func (p *Project) ContributorNames() []string {
	names := make([]string, 0, len(p.Contributor))
	for name := range p.Contributor {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
