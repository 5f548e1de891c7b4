package scheduler

import (
	"log"

	"github.com/KirkDiggler/nexus-classes/internal/config"
	"github.com/KirkDiggler/nexus-classes/internal/domain/classes"
	"github.com/KirkDiggler/nexus-classes/internal/domain/world"
	"github.com/KirkDiggler/nexus-classes/internal/metrics"
	"github.com/KirkDiggler/nexus-classes/internal/registry"
)

// ClassRegistry is the registry view the scheduler reads
type ClassRegistry interface {
	Lookup(id string) (registry.ParticipantState, bool)
	IsRegionEnabled(region world.RegionID) bool
}

// Config holds dependencies for the scheduler
type Config struct {
	Registry ClassRegistry
	Host     world.Host
	Tuning   config.Tuning
	// Effects overrides the built-in table, used by tests
	Effects []*Effect
}

// Firing records one effect applied to one participant
type Firing struct {
	EffectID      string `json:"effect_id"`
	ParticipantID string `json:"participant_id"`
}

type entry struct {
	effect    *Effect
	cadence   int64
	next      int64
	lastFired int64
	fired     bool
}

// Scheduler applies periodic class effects. It is driven entirely by Tick
// and keeps no timers of its own.
type Scheduler struct {
	registry ClassRegistry
	host     world.Host
	tuning   config.Tuning
	entries  []*entry
}

// New creates a scheduler from the effect table and configured cadences
func New(cfg *Config) *Scheduler {
	if cfg.Registry == nil {
		panic("registry is required")
	}
	if cfg.Host == nil {
		panic("host is required")
	}

	table := cfg.Effects
	if table == nil {
		table = Effects()
	}

	s := &Scheduler{
		registry: cfg.Registry,
		host:     cfg.Host,
		tuning:   cfg.Tuning,
	}
	for _, effect := range table {
		cadence := int64(cfg.Tuning.CoarseCadenceTicks)
		if effect.Cadence == CadenceFine {
			cadence = int64(cfg.Tuning.FineCadenceTicks)
		}
		if cadence < 1 {
			cadence = 1
		}
		s.entries = append(s.entries, &entry{effect: effect, cadence: cadence})
		log.Printf("Scheduler: Registered %s every %d ticks", effect.ID, cadence)
	}
	return s
}

// Tick fires every effect that is due at tick for the online roster. Each
// effect fires at most once per tick. Missed ticks are not replayed; the
// next firing is scheduled from the tick that actually ran.
func (s *Scheduler) Tick(tick int64, roster []*world.Participant) []Firing {
	var firings []Firing

	for _, e := range s.entries {
		if e.fired && tick < e.lastFired {
			// host clock restarted
			e.next = tick
		}
		if tick < e.next || (e.fired && tick == e.lastFired) {
			continue
		}
		e.fired = true
		e.lastFired = tick
		e.next = tick + e.cadence

		seen := make(map[string]bool, len(roster))
		for _, p := range roster {
			if p == nil || seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			if s.applies(e.effect, p) && e.effect.Apply(s, p) {
				metrics.PeriodicEffects.WithLabelValues(e.effect.ID).Inc()
				firings = append(firings, Firing{EffectID: e.effect.ID, ParticipantID: p.ID})
			}
		}
	}

	return firings
}

func (s *Scheduler) applies(effect *Effect, p *world.Participant) bool {
	if p == nil {
		return false
	}
	state, known := s.registry.Lookup(p.ID)
	if !known || state.Class != effect.Class || state.Class == classes.Unassigned {
		return false
	}
	return s.registry.IsRegionEnabled(p.Region())
}

// statusDuration outlasts one coarse period so effects do not lapse
// between firings
func (s *Scheduler) statusDuration() int {
	return s.tuning.CoarseCadenceTicks * 2
}
