package classdata

//go:generate mockgen -destination=mock/mock.go -package=mockclassdata -source=interface.go

import (
	"context"
)

// ParticipantRecord is the stored form of one participant's class state.
// Class is kept as text so unknown values survive to the loader.
type ParticipantRecord struct {
	ID                string `json:"id"`
	Class             string `json:"class"`
	ShowPerkFeedback  bool   `json:"show_perk_feedback"`
	ShowDebugFeedback bool   `json:"show_debug_feedback"`
}

// Repository defines the interface for class data persistence
type Repository interface {
	// SaveParticipant creates or replaces a participant record
	SaveParticipant(ctx context.Context, record *ParticipantRecord) error

	// ListParticipants returns every stored participant record
	ListParticipants(ctx context.Context) ([]*ParticipantRecord, error)

	// SaveEnabledRegions replaces the whole set of enabled regions
	SaveEnabledRegions(ctx context.Context, regions []string) error

	// ListEnabledRegions returns the stored enabled regions in sorted order
	ListEnabledRegions(ctx context.Context) ([]string, error)
}
