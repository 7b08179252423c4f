package common

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
)

// ProjectIDLength is the length of a short project identifier
const ProjectIDLength = 8

// NewUnitID generates a unique content unit ID with the "unit_" prefix.
// Format: unit_<uuid>
func NewUnitID() string {
	return "unit_" + uuid.New().String()
}

// ProjectID derives the deterministic short id for a project name:
// the first 8 lowercase hex characters of SHA-256(name). Identical names
// always map to the same id; distinct-name collisions are detected and
// rejected by the project service rather than silently overwriting.
func ProjectID(name string) string {
	sum := sha256.Sum256([]byte(name))
	return hex.EncodeToString(sum[:])[:ProjectIDLength]
}
