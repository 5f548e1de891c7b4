package classes

import (
	"strings"

	apperr "github.com/KirkDiggler/nexus-classes/internal/errors"
)

// Class is one of the closed set of participant classes
type Class string

const (
	Unassigned Class = "Unassigned"
	Builder    Class = "Builder"
	Miner      Class = "Miner"
	Warrior    Class = "Warrior"
	Artist     Class = "Artist"
)

// All lists every class, Unassigned first
var All = []Class{Unassigned, Builder, Miner, Warrior, Artist}

// String returns the display form of the class
func (c Class) String() string {
	if c == "" {
		return string(Unassigned)
	}
	return string(c)
}

// Valid reports whether c is a member of the enumeration
func (c Class) Valid() bool {
	for _, known := range All {
		if c == known {
			return true
		}
	}
	return false
}

// Parse resolves a class name case-insensitively. Unknown names return an
// InvalidClass error.
func Parse(name string) (Class, error) {
	trimmed := strings.TrimSpace(name)
	for _, c := range All {
		if strings.EqualFold(trimmed, string(c)) {
			return c, nil
		}
	}
	return Unassigned, apperr.InvalidClass(name)
}
