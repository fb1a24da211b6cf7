// Package uuid issues the time-ordered identifiers used as activity primary
// keys, so rows sort by creation without a separate sequence.
package uuid

import (
	"fmt"

	"github.com/gofrs/uuid/v5"
)

// NewActivityID generates a new UUID v7.
func NewActivityID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate UUID v7: %w", err)
	}
	return id.String(), nil
}

// Validate checks that id is a well-formed UUID.
func Validate(id string) error {
	if id == "" {
		return fmt.Errorf("UUID cannot be empty")
	}
	if _, err := uuid.FromString(id); err != nil {
		return fmt.Errorf("invalid UUID format: %w", err)
	}
	return nil
}
