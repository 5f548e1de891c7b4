package testutils

import (
	"github.com/KirkDiggler/nexus-classes/internal/domain/world"
)

// Stable identifiers for tests that go through UUID validation
const (
	ParticipantA = "0b6c4a52-9f0e-4a8e-9a51-3c1f6c0d0a01"
	ParticipantB = "0b6c4a52-9f0e-4a8e-9a51-3c1f6c0d0a02"
	RegionA      = "7e3f2a10-1d4c-4b7e-8f00-2a9b8c7d6e01"
	RegionB      = "7e3f2a10-1d4c-4b7e-8f00-2a9b8c7d6e02"
)

// CreateTestParticipant creates a survival-mode participant standing in
// region with an empty inventory
func CreateTestParticipant(id string, region world.RegionID) *world.Participant {
	return &world.Participant{
		ID:        id,
		Name:      "tester",
		Location:  world.Location{Region: region, X: 0, Y: 64, Z: 0},
		GameMode:  world.GameModeSurvival,
		Inventory: world.NewInventory(id, world.DefaultInventorySize),
	}
}
