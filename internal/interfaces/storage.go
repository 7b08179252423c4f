package interfaces

import (
	"github.com/prismbrain/prism/internal/models"
)

// ProjectStorage - interface for project aggregate persistence.
// A project is stored as a single record so that an ingestion's unit batch,
// source record and contributor-set update land together or not at all.
type ProjectStorage interface {
	SaveProject(project *models.Project) error
	GetProject(id string) (*models.Project, error)
	ListProjects() ([]*models.Project, error)
	DeleteProject(id string) error
	CountProjects() (int, error)
}

// StorageManager provides access to all storage interfaces
type StorageManager interface {
	ProjectStorage() ProjectStorage
	Close() error
}
