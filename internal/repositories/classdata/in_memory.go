package classdata

import (
	"context"
	"sort"
	"sync"

	apperr "github.com/KirkDiggler/nexus-classes/internal/errors"
)

// InMemoryRepository is a Repository kept in process memory
type InMemoryRepository struct {
	mu           sync.RWMutex
	participants map[string]ParticipantRecord
	regions      []string
}

// NewInMemoryRepository creates an empty in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		participants: make(map[string]ParticipantRecord),
	}
}

// SaveParticipant creates or replaces a participant record
func (r *InMemoryRepository) SaveParticipant(ctx context.Context, record *ParticipantRecord) error {
	if record == nil {
		return apperr.InvalidArgument("participant record cannot be nil")
	}
	if record.ID == "" {
		return apperr.InvalidArgument("participant ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.participants[record.ID] = *record
	return nil
}

// ListParticipants returns every stored record ordered by id
func (r *InMemoryRepository) ListParticipants(ctx context.Context) ([]*ParticipantRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*ParticipantRecord, 0, len(r.participants))
	for _, record := range r.participants {
		copied := record
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// SaveEnabledRegions replaces the enabled region set
func (r *InMemoryRepository) SaveEnabledRegions(ctx context.Context, regions []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.regions = sortedUnique(regions)
	return nil
}

// ListEnabledRegions returns the enabled regions
func (r *InMemoryRepository) ListEnabledRegions(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string{}, r.regions...), nil
}

func sortedUnique(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
