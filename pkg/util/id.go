package util

import (
	"strings"

	"github.com/google/uuid"
)

// NewID generates a short unique identifier for engine entities.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
