package interfaces

import (
	"context"

	"github.com/prismbrain/prism/internal/models"
)

// IngestBatch is one ingestion request handed to the project service.
// Units arrive normalized but unclassified; the service classifies them
// before appending. Connections bypass classification entirely.
type IngestBatch struct {
	SourceType  models.SourceType
	DisplayName string
	Units       []*models.ContentUnit
	Connections []models.Connection
}

// ProjectService - the project aggregator. Owns all mutable project state;
// callers reference projects by id only.
type ProjectService interface {
	// CreateProject derives a deterministic id from the name and registers
	// an empty project. Re-creating an existing name resets its state.
	CreateProject(ctx context.Context, name string) (string, error)

	// Ingest classifies and appends a batch of units plus one source record,
	// atomically. Returns the number of accepted units.
	Ingest(ctx context.Context, projectID string, batch IngestBatch) (int, error)

	// Synthesize recomputes the aggregate report from current state.
	// Pure read; safe to call repeatedly.
	Synthesize(ctx context.Context, projectID string) (*models.SynthesisReport, error)

	// GetProject returns the current project state
	GetProject(ctx context.Context, projectID string) (*models.Project, error)

	// ListProjects returns all registered projects
	ListProjects(ctx context.Context) ([]*models.Project, error)
}

// SchedulerService - background synthesis refresh
type SchedulerService interface {
	Start() error
	Stop()
}
