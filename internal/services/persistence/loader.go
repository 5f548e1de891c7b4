package persistence

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/nexus-classes/internal/domain/classes"
	"github.com/KirkDiggler/nexus-classes/internal/domain/world"
	"github.com/KirkDiggler/nexus-classes/internal/registry"
	"github.com/KirkDiggler/nexus-classes/internal/repositories/classdata"
	"github.com/KirkDiggler/nexus-classes/internal/uuid"
)

// LoadReport summarizes what a Load restored and what it skipped
type LoadReport struct {
	Participants   int
	EnabledRegions int
	Warnings       []string
}

func (r *LoadReport) warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.Warnings = append(r.Warnings, msg)
	log.Printf("Persistence: WARNING - %s", msg)
}

// LoaderConfig holds the dependencies of a Loader
type LoaderConfig struct {
	Repository classdata.Repository
	Registry   *registry.Registry
}

// Loader reads stored class data and restores it into the registry
type Loader struct {
	repository classdata.Repository
	registry   *registry.Registry
}

// NewLoader creates a loader
func NewLoader(cfg *LoaderConfig) *Loader {
	if cfg == nil {
		panic("config cannot be nil")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Registry == nil {
		panic("registry is required")
	}

	return &Loader{
		repository: cfg.Repository,
		registry:   cfg.Registry,
	}
}

// Load restores participants and enabled regions. A collection that cannot
// be read is logged and treated as empty. Records with malformed
// identifiers or unknown classes are skipped and listed in the report.
func (l *Loader) Load(ctx context.Context) *LoadReport {
	report := &LoadReport{}

	participants := l.loadParticipants(ctx, report)
	regions := l.loadRegions(ctx, report)

	l.registry.Restore(participants, regions)

	report.Participants = len(participants)
	report.EnabledRegions = len(regions)
	return report
}

func (l *Loader) loadParticipants(ctx context.Context, report *LoadReport) []registry.ParticipantState {
	records, err := l.repository.ListParticipants(ctx)
	if err != nil {
		report.warn("failed to read participants, starting with none: %v", err)
		return nil
	}

	seen := make(map[string]bool, len(records))
	out := make([]registry.ParticipantState, 0, len(records))
	for _, record := range records {
		if record == nil {
			continue
		}

		id, err := uuid.Normalize(record.ID)
		if err != nil {
			report.warn("skipping participant with malformed id %q", record.ID)
			continue
		}

		class, err := classes.Parse(record.Class)
		if err != nil {
			report.warn("skipping participant %s with unknown class %q", id, record.Class)
			continue
		}

		if seen[id] {
			report.warn("skipping duplicate participant %s", id)
			continue
		}
		seen[id] = true

		out = append(out, registry.ParticipantState{
			ID:    id,
			Class: class,
			Preferences: registry.Preferences{
				ShowPerkFeedback:  record.ShowPerkFeedback,
				ShowDebugFeedback: record.ShowDebugFeedback,
			},
		})
	}
	return out
}

func (l *Loader) loadRegions(ctx context.Context, report *LoadReport) []world.RegionID {
	stored, err := l.repository.ListEnabledRegions(ctx)
	if err != nil {
		report.warn("failed to read enabled regions, starting with none: %v", err)
		return nil
	}

	seen := make(map[string]bool, len(stored))
	out := make([]world.RegionID, 0, len(stored))
	for _, raw := range stored {
		id, err := uuid.Normalize(raw)
		if err != nil {
			report.warn("skipping region with malformed id %q", raw)
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, world.RegionID(id))
	}
	return out
}

// RecordFromState converts registry state into its stored form
func RecordFromState(state registry.ParticipantState) *classdata.ParticipantRecord {
	return &classdata.ParticipantRecord{
		ID:                state.ID,
		Class:             state.Class.String(),
		ShowPerkFeedback:  state.Preferences.ShowPerkFeedback,
		ShowDebugFeedback: state.Preferences.ShowDebugFeedback,
	}
}
