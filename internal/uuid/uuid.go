// uuid simple generator that allows mocking, plus validation for persisted identifiers
package uuid

import (
	"github.com/google/uuid"
)

// Generator is an interface for generating UUIDs
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements the Generator interface using Google's UUID package
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// Normalize parses id and returns its canonical lowercase hyphenated form.
// Participant and region identifiers are stored in this form so a value
// saved in one spelling reloads as the same key.
func Normalize(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

// Valid reports whether id parses as a UUID
func Valid(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
