package registry

import (
	"log"
	"sort"
	"sync"

	"github.com/KirkDiggler/nexus-classes/internal/domain/classes"
	"github.com/KirkDiggler/nexus-classes/internal/domain/world"
	apperr "github.com/KirkDiggler/nexus-classes/internal/errors"
)

// Preference keys accepted by SetPreference
const (
	PreferencePerkFeedback  = "perk_feedback"
	PreferenceDebugFeedback = "debug_feedback"
)

// Preferences are per-participant feedback toggles
type Preferences struct {
	ShowPerkFeedback  bool `json:"show_perk_feedback"`
	ShowDebugFeedback bool `json:"show_debug_feedback"`
}

// DefaultPreferences returns the preferences of a new participant
func DefaultPreferences() Preferences {
	return Preferences{ShowPerkFeedback: true}
}

// ParticipantState is the class assignment and preferences of one participant
type ParticipantState struct {
	ID          string        `json:"id"`
	Class       classes.Class `json:"class"`
	Preferences Preferences   `json:"preferences"`
}

// Registry is the single source of truth for participant classes and the
// per-region enable flag. Each map has its own lock so command-surface
// writes from other goroutines never race the simulation.
type Registry struct {
	participantsMu sync.RWMutex
	participants   map[string]*ParticipantState

	regionsMu sync.RWMutex
	regions   map[world.RegionID]bool
}

// New creates an empty registry
func New() *Registry {
	return &Registry{
		participants: make(map[string]*ParticipantState),
		regions:      make(map[world.RegionID]bool),
	}
}

// GetOrCreate returns a snapshot of the participant's state, creating the
// default state on first lookup
func (r *Registry) GetOrCreate(id string) ParticipantState {
	r.participantsMu.RLock()
	state, ok := r.participants[id]
	if ok {
		snapshot := *state
		r.participantsMu.RUnlock()
		return snapshot
	}
	r.participantsMu.RUnlock()

	r.participantsMu.Lock()
	defer r.participantsMu.Unlock()
	return *r.getOrCreateLocked(id)
}

// Lookup returns the participant's state without creating it
func (r *Registry) Lookup(id string) (ParticipantState, bool) {
	r.participantsMu.RLock()
	defer r.participantsMu.RUnlock()

	state, ok := r.participants[id]
	if !ok {
		return ParticipantState{}, false
	}
	return *state, true
}

// ClassOf returns the participant's class, Unassigned when unknown
func (r *Registry) ClassOf(id string) classes.Class {
	return r.GetOrCreate(id).Class
}

// SetClass overwrites the participant's class. The caller is responsible
// for persisting the change.
func (r *Registry) SetClass(id string, class classes.Class) (ParticipantState, error) {
	if !class.Valid() {
		return ParticipantState{}, apperr.InvalidClass(string(class))
	}

	r.participantsMu.Lock()
	defer r.participantsMu.Unlock()

	state := r.getOrCreateLocked(id)
	state.Class = class
	return *state, nil
}

// SetPreference toggles one of the feedback preferences
func (r *Registry) SetPreference(id, key string, value bool) (ParticipantState, error) {
	r.participantsMu.Lock()
	defer r.participantsMu.Unlock()

	switch key {
	case PreferencePerkFeedback, PreferenceDebugFeedback:
	default:
		return ParticipantState{}, apperr.InvalidArgumentf("unknown preference %q", key).
			WithMeta("preference", key)
	}

	state := r.getOrCreateLocked(id)
	if key == PreferencePerkFeedback {
		state.Preferences.ShowPerkFeedback = value
	} else {
		state.Preferences.ShowDebugFeedback = value
	}
	return *state, nil
}

// Participants returns snapshots of every known participant ordered by id
func (r *Registry) Participants() []ParticipantState {
	r.participantsMu.RLock()
	defer r.participantsMu.RUnlock()

	out := make([]ParticipantState, 0, len(r.participants))
	for _, state := range r.participants {
		out = append(out, *state)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// IsRegionEnabled reports whether class effects are on in the region.
// Unknown regions are disabled.
func (r *Registry) IsRegionEnabled(region world.RegionID) bool {
	r.regionsMu.RLock()
	defer r.regionsMu.RUnlock()
	return r.regions[region]
}

// SetRegionEnabled sets the region's flag. Calling it twice with the same
// value is a no-op. The caller is responsible for persisting the change.
func (r *Registry) SetRegionEnabled(region world.RegionID, enabled bool) {
	r.regionsMu.Lock()
	defer r.regionsMu.Unlock()

	if enabled {
		r.regions[region] = true
		return
	}
	delete(r.regions, region)
}

// EnabledRegions returns the enabled regions in sorted order
func (r *Registry) EnabledRegions() []world.RegionID {
	r.regionsMu.RLock()
	defer r.regionsMu.RUnlock()

	out := make([]world.RegionID, 0, len(r.regions))
	for region := range r.regions {
		out = append(out, region)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Restore replaces the registry content with loaded state
func (r *Registry) Restore(participants []ParticipantState, enabledRegions []world.RegionID) {
	r.participantsMu.Lock()
	r.participants = make(map[string]*ParticipantState, len(participants))
	for i := range participants {
		state := participants[i]
		r.participants[state.ID] = &state
	}
	r.participantsMu.Unlock()

	r.regionsMu.Lock()
	r.regions = make(map[world.RegionID]bool, len(enabledRegions))
	for _, region := range enabledRegions {
		r.regions[region] = true
	}
	r.regionsMu.Unlock()

	log.Printf("Registry: Restored %d participants and %d enabled regions", len(participants), len(enabledRegions))
}

func (r *Registry) getOrCreateLocked(id string) *ParticipantState {
	state, ok := r.participants[id]
	if !ok {
		state = &ParticipantState{
			ID:          id,
			Class:       classes.Unassigned,
			Preferences: DefaultPreferences(),
		}
		r.participants[id] = state
	}
	return state
}
