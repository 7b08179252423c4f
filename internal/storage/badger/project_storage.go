package badger

import (
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/timshannon/badgerhold/v4"

	"github.com/prismbrain/prism/internal/interfaces"
	"github.com/prismbrain/prism/internal/models"
)

// ProjectStorage implements the ProjectStorage interface for Badger.
// Each project aggregate is one record, so an ingestion's unit batch,
// source record and contributor update persist atomically in one upsert.
type ProjectStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewProjectStorage creates a new ProjectStorage instance
func NewProjectStorage(db *BadgerDB, logger arbor.ILogger) interfaces.ProjectStorage {
	return &ProjectStorage{
		db:     db,
		logger: logger,
	}
}

func (s *ProjectStorage) SaveProject(project *models.Project) error {
	if project.ID == "" {
		return fmt.Errorf("project ID is required: %w", models.ErrInvalidInput)
	}

	if err := s.db.Store().Upsert(project.ID, project); err != nil {
		return fmt.Errorf("failed to save project %s: %w", project.ID, err)
	}
	return nil
}

func (s *ProjectStorage) GetProject(id string) (*models.Project, error) {
	var project models.Project
	if err := s.db.Store().Get(id, &project); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("project %s: %w", id, models.ErrProjectNotFound)
		}
		return nil, fmt.Errorf("failed to get project %s: %w", id, err)
	}
	return &project, nil
}

func (s *ProjectStorage) ListProjects() ([]*models.Project, error) {
	var projects []models.Project
	if err := s.db.Store().Find(&projects, nil); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	result := make([]*models.Project, len(projects))
	for i := range projects {
		result[i] = &projects[i]
	}
	return result, nil
}

func (s *ProjectStorage) DeleteProject(id string) error {
	if err := s.db.Store().Delete(id, &models.Project{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete project %s: %w", id, err)
	}
	return nil
}

func (s *ProjectStorage) CountProjects() (int, error) {
	count, err := s.db.Store().Count(&models.Project{}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return int(count), nil
}
