package utils

import (
	"github.com/google/uuid"
)

// GenerateUUIDv7 generates a new UUID v7, falling back to v4 if the
// time source misbehaves.
func GenerateUUIDv7() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
