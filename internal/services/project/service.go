// Package project implements the project aggregator: the single owner of
// per-project mutable state. External callers reference projects by id only
// and receive derived views (synthesis reports), never live internals.
package project

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/prismbrain/prism/internal/common"
	"github.com/prismbrain/prism/internal/interfaces"
	"github.com/prismbrain/prism/internal/models"
	"github.com/prismbrain/prism/internal/services/classifier"
	"github.com/prismbrain/prism/internal/services/themes"
)

// projectState pairs a project with its own lock. Ingestions against one
// project are serialized; synthesis takes the read side so concurrent
// reads never observe a torn append.
type projectState struct {
	mu      sync.RWMutex
	project *models.Project
}

// Service implements the ProjectService interface. The registry is owned by
// this service instance, not a process-wide singleton, so tests and embedded
// hosts can run isolated instances side by side.
type Service struct {
	storage     interfaces.ProjectStorage
	classifier  *classifier.Service
	themes      *themes.Service
	events      interfaces.EventService
	logger      arbor.ILogger
	concurrency int

	mu       sync.RWMutex // guards the registry map itself
	registry map[string]*projectState

	now func() time.Time
}

// NewService creates the project aggregator and warm-loads previously
// persisted projects into the registry.
func NewService(
	storage interfaces.ProjectStorage,
	classifierService *classifier.Service,
	themesService *themes.Service,
	eventService interfaces.EventService,
	concurrency int,
	logger arbor.ILogger,
) (*Service, error) {
	if concurrency <= 0 {
		concurrency = 1
	}

	s := &Service{
		storage:     storage,
		classifier:  classifierService,
		themes:      themesService,
		events:      eventService,
		logger:      logger,
		concurrency: concurrency,
		registry:    make(map[string]*projectState),
		now:         time.Now,
	}

	projects, err := storage.ListProjects()
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	for _, p := range projects {
		s.registry[p.ID] = &projectState{project: p}
	}

	logger.Info().Int("projects", len(projects)).Msg("Project aggregator initialized")

	return s, nil
}

// CreateProject derives the deterministic 8-hex id from the name and
// registers an empty project. Creating the same name again resets that
// project; a distinct name hashing to an existing id is rejected instead
// of silently overwriting the other project's state.
func (s *Service) CreateProject(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("project name is required: %w", models.ErrInvalidInput)
	}

	id := common.ProjectID(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.registry[id]; ok && existing.project.Name != name {
		return "", fmt.Errorf("id %s already belongs to project %q: %w", id, existing.project.Name, models.ErrProjectCollision)
	}

	project := models.NewProject(id, name, s.now().UTC())
	if err := s.storage.SaveProject(project); err != nil {
		return "", fmt.Errorf("failed to persist project %s: %w", id, err)
	}
	s.registry[id] = &projectState{project: project}

	s.logger.Info().Str("project_id", id).Str("name", name).Msg("Project created")
	s.publish(ctx, interfaces.EventProjectCreated, map[string]interface{}{
		"project_id": id,
		"name":       name,
	})

	return id, nil
}

// Ingest classifies a batch of normalized units and appends them, together
// with one source record and the contributor-set union, atomically. On any
// persistence failure the project state is left unchanged.
func (s *Service) Ingest(ctx context.Context, projectID string, batch interfaces.IngestBatch) (int, error) {
	state, err := s.state(projectID)
	if err != nil {
		return 0, err
	}

	// Classification is stateless and has no data dependency between units,
	// so it fans out before the project lock is taken.
	s.classifyAll(batch.Units)

	now := s.now().UTC()

	state.mu.Lock()
	defer state.mu.Unlock()

	current := state.project

	next := *current
	next.Units = append(append([]*models.ContentUnit{}, current.Units...), batch.Units...)
	next.Connections = append(append([]models.Connection{}, current.Connections...), batch.Connections...)
	next.Sources = append(append([]models.SourceRecord{}, current.Sources...), models.SourceRecord{
		Kind:        batch.SourceType,
		DisplayName: batch.DisplayName,
		AddedAt:     now,
		UnitCount:   len(batch.Units),
	})

	next.Contributor = make(map[string]bool, len(current.Contributor))
	for name := range current.Contributor {
		next.Contributor[name] = true
	}
	for _, unit := range batch.Units {
		next.Contributor[unit.Contributor] = true
	}

	next.UpdatedAt = now

	if err := s.storage.SaveProject(&next); err != nil {
		return 0, fmt.Errorf("failed to persist ingestion for project %s: %w", projectID, err)
	}
	state.project = &next

	s.logger.Info().
		Str("project_id", projectID).
		Str("source_kind", string(batch.SourceType)).
		Str("source_name", batch.DisplayName).
		Int("units", len(batch.Units)).
		Int("connections", len(batch.Connections)).
		Msg("Source ingested")

	s.publish(ctx, interfaces.EventSourceIngested, map[string]interface{}{
		"project_id":  projectID,
		"source_kind": string(batch.SourceType),
		"source_name": batch.DisplayName,
		"unit_count":  len(batch.Units),
	})

	return len(batch.Units), nil
}

// Synthesize recomputes the aggregate report from current project state.
// Pure read: repeated calls without an intervening ingest yield identical
// reports.
func (s *Service) Synthesize(ctx context.Context, projectID string) (*models.SynthesisReport, error) {
	state, err := s.state(projectID)
	if err != nil {
		return nil, err
	}

	state.mu.RLock()
	report := s.buildReport(state.project)
	state.mu.RUnlock()

	s.publish(ctx, interfaces.EventSynthesisGenerated, map[string]interface{}{
		"project_id":  projectID,
		"total_units": report.TotalUnits,
	})

	return report, nil
}

// GetProject returns the current project state
func (s *Service) GetProject(ctx context.Context, projectID string) (*models.Project, error) {
	state, err := s.state(projectID)
	if err != nil {
		return nil, err
	}

	state.mu.RLock()
	defer state.mu.RUnlock()
	return state.project, nil
}

// ListProjects returns all registered projects
func (s *Service) ListProjects(ctx context.Context) ([]*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]*models.Project, 0, len(s.registry))
	for _, state := range s.registry {
		state.mu.RLock()
		projects = append(projects, state.project)
		state.mu.RUnlock()
	}
	return projects, nil
}

// state looks up a project's lock-bearing registry entry
func (s *Service) state(projectID string) (*projectState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.registry[projectID]
	if !ok {
		return nil, fmt.Errorf("project %s: %w", projectID, models.ErrProjectNotFound)
	}
	return state, nil
}

// classifyAll fans classification out over a bounded worker pool and fills
// in missing unit identity. The classifier never fails, so there is no
// error path here.
func (s *Service) classifyAll(units []*models.ContentUnit) {
	sem := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup

	for _, unit := range units {
		wg.Add(1)
		go func(u *models.ContentUnit) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if u.ID == "" {
				u.ID = common.NewUnitID()
			}
			if u.Contributor == "" {
				u.Contributor = "Unknown"
			}
			if u.CreatedAt.IsZero() {
				u.CreatedAt = s.now().UTC()
			}

			c := s.classifier.Classify(u.Text, u.SourceKind)
			u.Classification = &c
		}(unit)
	}

	wg.Wait()
}

func (s *Service) publish(ctx context.Context, eventType interfaces.EventType, payload map[string]interface{}) {
	if s.events == nil {
		return
	}
	_ = s.events.Publish(ctx, interfaces.Event{
		Type:      eventType,
		Timestamp: s.now().UTC(),
		Payload:   payload,
	})
}
