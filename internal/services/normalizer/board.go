package normalizer

import (
	"github.com/prismbrain/prism/internal/models"
	pkgmodels "github.com/prismbrain/prism/pkg/models"
)

// Board converts a board export into content units and connections.
// Sticky and text nodes become classifiable units; connector nodes become
// relationship records with no text-derived fields. Fill color rides along
// in origin metadata for downstream analytics but is never an input to
// classification.
func (s *Service) Board(upload *pkgmodels.BoardUpload) ([]*models.ContentUnit, []models.Connection) {
	units := []*models.ContentUnit{}
	connections := []models.Connection{}

	for _, record := range upload.Records {
		switch record.Kind {
		case pkgmodels.BoardNodeConnector:
			connections = append(connections, models.Connection{
				From:         record.From,
				To:           record.To,
				Relationship: "connects_to",
				SourceName:   upload.BoardName,
			})

		case pkgmodels.BoardNodeSticky, pkgmodels.BoardNodeText:
			kind := models.SourceKindBoardSticky
			if record.Kind == pkgmodels.BoardNodeText {
				kind = models.SourceKindBoardText
			}

			origin := map[string]interface{}{
				"node_id": record.NodeID,
			}
			if record.Color != "" {
				origin["color"] = record.Color
			}
			if len(record.Position) > 0 {
				origin["position"] = record.Position
			}

			units = append(units, s.newUnit(record.Text, kind, upload.BoardName, record.Contributor, origin))

		default:
			s.logger.Debug().
				Str("kind", record.Kind).
				Str("node_id", record.NodeID).
				Msg("Skipping unrecognized board node kind")
		}
	}

	return units, connections
}
