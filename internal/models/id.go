package models

import (
	"regexp"

	"github.com/google/uuid"
)

// canonicalIDPattern matches the 8-4-4-4-12 lowercase hex grouped form that
// every persisted identifier must have. Handlers check path- and
// body-supplied identifiers against it before any store access.
var canonicalIDPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// IsCanonicalID reports whether s is a canonically formatted identifier.
func IsCanonicalID(s string) bool {
	return canonicalIDPattern.MatchString(s)
}

// IDGenerator produces unique record identifiers.
type IDGenerator interface {
	NewID() (string, error)
}

// TimeBasedIDGenerator issues version 1 time-based UUIDs, which sort by
// creation time while remaining globally unique.
type TimeBasedIDGenerator struct{}

// NewID implements IDGenerator.
func (TimeBasedIDGenerator) NewID() (string, error) {
	id, err := uuid.NewUUID()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
