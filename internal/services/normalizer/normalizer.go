// Package normalizer converts source-specific collaborator records into
// uniform content units. It assigns unit identity (id, ingestion timestamp)
// and applies the per-source admission rules; classification happens later
// in the project service.
package normalizer

import (
	"time"

	"github.com/ternarybob/arbor"

	"github.com/prismbrain/prism/internal/common"
	"github.com/prismbrain/prism/internal/models"
)

// UnknownContributor is used when a source reports no author
const UnknownContributor = "Unknown"

// Service normalizes collaborator payloads into content units
type Service struct {
	logger arbor.ILogger
	now    func() time.Time
}

// NewService creates a new normalizer service
func NewService(logger arbor.ILogger) *Service {
	return &Service{
		logger: logger,
		now:    time.Now,
	}
}

// newUnit fills the identity fields shared by every source kind
func (s *Service) newUnit(text string, kind models.SourceKind, sourceName, contributor string, origin map[string]interface{}) *models.ContentUnit {
	if contributor == "" {
		contributor = UnknownContributor
	}
	return &models.ContentUnit{
		ID:          common.NewUnitID(),
		Text:        text,
		SourceKind:  kind,
		SourceName:  sourceName,
		Contributor: contributor,
		CreatedAt:   s.now().UTC(),
		Origin:      origin,
	}
}
