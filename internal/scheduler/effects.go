package scheduler

import (
	"github.com/KirkDiggler/nexus-classes/internal/domain/classes"
	"github.com/KirkDiggler/nexus-classes/internal/domain/world"
)

// Periodic effect ids
const (
	ArtistWaterAllergy      = "artist.water_allergy"
	BuilderSunlightWeakness = "builder.sunlight_weakness"
	MinerNightVision        = "miner.night_vision"
	WarriorGoldStrength     = "warrior.gold_strength"
	WarriorIronWeakness     = "warrior.iron_weakness"
)

// Night vision flickers on the client when under this many ticks remain
const nightVisionFlickerTicks = 200

// Cadence selects one of the two configured firing intervals
type Cadence string

const (
	CadenceFine   Cadence = "fine"
	CadenceCoarse Cadence = "coarse"
)

// Effect is a class-conditioned recurring effect. Apply reports whether
// the participant was affected.
type Effect struct {
	ID      string
	Class   classes.Class
	Cadence Cadence
	Apply   func(s *Scheduler, p *world.Participant) bool
}

// Effects returns the compiled-in periodic effect table
func Effects() []*Effect {
	return []*Effect{
		{
			ID:      ArtistWaterAllergy,
			Class:   classes.Artist,
			Cadence: CadenceFine,
			Apply:   applyWaterAllergy,
		},
		{
			ID:      BuilderSunlightWeakness,
			Class:   classes.Builder,
			Cadence: CadenceCoarse,
			Apply:   applySunlightWeakness,
		},
		{
			ID:      MinerNightVision,
			Class:   classes.Miner,
			Cadence: CadenceCoarse,
			Apply:   applyNightVision,
		},
		{
			ID:      WarriorGoldStrength,
			Class:   classes.Warrior,
			Cadence: CadenceCoarse,
			Apply:   applyGoldStrength,
		},
		{
			ID:      WarriorIronWeakness,
			Class:   classes.Warrior,
			Cadence: CadenceCoarse,
			Apply:   applyIronWeakness,
		},
	}
}

// IDs returns the ids of the built-in periodic effects
func IDs() []string {
	effects := Effects()
	ids := make([]string, 0, len(effects))
	for _, e := range effects {
		ids = append(ids, e.ID)
	}
	return ids
}

func applyWaterAllergy(s *Scheduler, p *world.Participant) bool {
	if !p.Environment.InWater {
		return false
	}
	s.host.Damage(p.ID, s.tuning.WaterDamage)
	return true
}

func applySunlightWeakness(s *Scheduler, p *world.Participant) bool {
	env := p.Environment
	if !env.Daylight || !env.OpenSky || p.Inventory.Helmet() != nil {
		return false
	}
	s.host.Ignite(p.ID, s.tuning.SunburnTicks)
	return true
}

func applyNightVision(s *Scheduler, p *world.Participant) bool {
	if p.Location.Y >= s.tuning.NightVisionMaxY {
		return false
	}
	s.host.ApplyStatus(p.ID, world.StatusNightVision, s.statusDuration()+nightVisionFlickerTicks, 0)
	return true
}

func applyGoldStrength(s *Scheduler, p *world.Participant) bool {
	held := p.HeldItem()
	if held == nil || !held.Material.IsGoldenWeapon() {
		return false
	}
	// amplifier 1 is Strength II
	s.host.ApplyStatus(p.ID, world.StatusStrength, s.statusDuration(), 1)
	return true
}

func applyIronWeakness(s *Scheduler, p *world.Participant) bool {
	applied := false
	if held := p.HeldItem(); held != nil && held.Material.IsIronWeapon() {
		s.host.ApplyStatus(p.ID, world.StatusMiningFatigue, s.statusDuration(), 0)
		applied = true
	}
	if p.Inventory.WearsArmor(world.Material.IsIronArmor) {
		s.host.ApplyStatus(p.ID, world.StatusSlowness, s.statusDuration(), 0)
		applied = true
	}
	return applied
}
