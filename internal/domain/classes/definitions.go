package classes

import "github.com/KirkDiggler/nexus-classes/internal/domain/world"

// MarkedItemSpec describes the class-bound item a class can be granted
type MarkedItemSpec struct {
	Material    world.Material
	DisplayName string
	Description string
}

// Definition is the static description of a class. Perks and Weaknesses
// list rule and periodic effect ids in evaluation order.
type Definition struct {
	Class       Class
	DisplayName string
	MarkedItem  *MarkedItemSpec
	Perks       []string
	Weaknesses  []string
}

var definitions = map[Class]*Definition{
	Unassigned: {
		Class:       Unassigned,
		DisplayName: "Unassigned",
	},
	Builder: {
		Class:       Builder,
		DisplayName: "Builder",
		MarkedItem: &MarkedItemSpec{
			Material:    world.MaterialStick,
			DisplayName: "Transmute",
			Description: "Builder Class Item",
		},
		Perks:      []string{"builder.no_fall_damage", "builder.transmute"},
		Weaknesses: []string{"builder.sunlight_weakness"},
	},
	Miner: {
		Class:       Miner,
		DisplayName: "Miner",
		Perks:       []string{"miner.bonus_emerald", "miner.night_vision"},
		Weaknesses:  []string{"miner.zombie_weakness"},
	},
	Warrior: {
		Class:       Warrior,
		DisplayName: "Warrior",
		Perks:       []string{"warrior.fire_aspect", "warrior.fire_resistance", "warrior.gold_strength"},
		Weaknesses:  []string{"warrior.iron_weakness"},
	},
	Artist: {
		Class:       Artist,
		DisplayName: "Artist",
		MarkedItem: &MarkedItemSpec{
			Material:    world.MaterialEnderPearl,
			DisplayName: "Planar Blink",
			Description: "Artist Class Item",
		},
		Perks:      []string{"artist.free_pearl"},
		Weaknesses: []string{"artist.water_allergy"},
	},
}

// Lookup returns the definition of c, falling back to Unassigned
func Lookup(c Class) *Definition {
	if def, ok := definitions[c]; ok {
		return def
	}
	return definitions[Unassigned]
}

// MarkedItem returns the marked item definition of c, or nil when it has none
func MarkedItem(c Class) *MarkedItemSpec {
	return Lookup(c).MarkedItem
}
