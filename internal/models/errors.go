package models

import (
	"errors"
)

// Sentinel errors surfaced by the project aggregator. The classifier,
// theme extractor and normalizer never fail; malformed input degrades to
// safe defaults instead of erroring.
var (
	// ErrProjectNotFound - an operation referenced an unknown project id
	ErrProjectNotFound = errors.New("project not found")

	// ErrInvalidInput - a required field was empty or missing; rejected
	// before any state mutation
	ErrInvalidInput = errors.New("invalid input")

	// ErrProjectCollision - two distinct project names hashed to the same
	// short id. Creation is rejected rather than silently overwriting.
	ErrProjectCollision = errors.New("project id collision")
)
