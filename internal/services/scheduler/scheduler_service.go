// Package scheduler periodically refreshes synthesis reports in the
// background so websocket listeners see updated aggregates without a
// client-triggered synthesis call.
package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"

	"github.com/prismbrain/prism/internal/interfaces"
)

// Service implements SchedulerService
type Service struct {
	projects interfaces.ProjectService
	cron     *cron.Cron
	schedule string
	logger   arbor.ILogger

	mu      sync.Mutex
	running bool
}

// NewService creates a scheduler that re-synthesizes every project on the
// given cron schedule (six-field format with seconds).
func NewService(projects interfaces.ProjectService, schedule string, logger arbor.ILogger) interfaces.SchedulerService {
	return &Service{
		projects: projects,
		cron:     cron.New(cron.WithSeconds()),
		schedule: schedule,
		logger:   logger,
	}
}

// Start registers the refresh job and starts the cron loop
func (s *Service) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("scheduler already running")
	}

	if _, err := s.cron.AddFunc(s.schedule, s.refreshAll); err != nil {
		return fmt.Errorf("failed to add synthesis refresh job: %w", err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info().Str("schedule", s.schedule).Msg("Synthesis scheduler started")
	return nil
}

// Stop halts the cron loop and waits for a running refresh to finish
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()
	s.running = false

	s.logger.Info().Msg("Synthesis scheduler stopped")
}

// refreshAll synthesizes every registered project. A failure on one project
// is logged and does not block the rest.
func (s *Service) refreshAll() {
	ctx := context.Background()

	projects, err := s.projects.ListProjects(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Scheduled synthesis failed to list projects")
		return
	}

	for _, p := range projects {
		if _, err := s.projects.Synthesize(ctx, p.ID); err != nil {
			s.logger.Warn().Err(err).Str("project_id", p.ID).Msg("Scheduled synthesis failed")
			continue
		}
	}

	if len(projects) > 0 {
		s.logger.Debug().Int("projects", len(projects)).Msg("Scheduled synthesis refresh complete")
	}
}
