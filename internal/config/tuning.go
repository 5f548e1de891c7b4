package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning holds the periodic effect cadences and effect magnitudes.
// Cadences are in simulation ticks per firing.
type Tuning struct {
	FineCadenceTicks   int `yaml:"fine_cadence_ticks"`
	CoarseCadenceTicks int `yaml:"coarse_cadence_ticks"`

	IgniteTicks     int     `yaml:"ignite_ticks"`
	SunburnTicks    int     `yaml:"sunburn_ticks"`
	WaterDamage     float64 `yaml:"water_damage"`
	NightVisionMaxY float64 `yaml:"night_vision_max_y"`
}

// DefaultTuning returns the values the class effects were balanced around
func DefaultTuning() Tuning {
	return Tuning{
		FineCadenceTicks:   10,
		CoarseCadenceTicks: 20,
		IgniteTicks:        80, // Fire Aspect I
		SunburnTicks:       40,
		WaterDamage:        1.0,
		NightVisionMaxY:    60,
	}
}

// LoadTuning reads tuning.yaml. Keys missing from the file keep their
// defaults; a missing file yields DefaultTuning.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("Config: tuning file %s not found, using defaults", path)
			return t, nil
		}
		return t, fmt.Errorf("read tuning: %w", err)
	}

	if err := yaml.Unmarshal(raw, &t); err != nil {
		return DefaultTuning(), fmt.Errorf("tuning.yaml: %w", err)
	}

	if err := t.Validate(); err != nil {
		return DefaultTuning(), err
	}

	return t, nil
}

// Validate rejects cadences that would never fire
func (t Tuning) Validate() error {
	if t.FineCadenceTicks < 1 {
		return fmt.Errorf("fine_cadence_ticks must be >= 1, got %d", t.FineCadenceTicks)
	}
	if t.CoarseCadenceTicks < 1 {
		return fmt.Errorf("coarse_cadence_ticks must be >= 1, got %d", t.CoarseCadenceTicks)
	}
	if t.IgniteTicks < 0 || t.SunburnTicks < 0 {
		return fmt.Errorf("fire durations cannot be negative")
	}
	return nil
}
