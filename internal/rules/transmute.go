package rules

import "github.com/KirkDiggler/nexus-classes/internal/domain/world"

// Transmute rings are closed cycles. A block only ever moves within its own
// ring.
var transmuteRings = [][]world.Material{
	{world.MaterialCobblestone, world.MaterialStone, world.MaterialStoneBricks, world.MaterialObsidian},
	{world.MaterialDeepslate, world.MaterialTuff, world.MaterialNetherBricks, world.MaterialBlackstone},
}

var transmuteNext = buildTransmuteTable()

func buildTransmuteTable() map[world.Material]world.Material {
	next := make(map[world.Material]world.Material)
	for _, ring := range transmuteRings {
		for i, m := range ring {
			next[m] = ring[(i+1)%len(ring)]
		}
	}
	return next
}

// Transmute returns the next block type in m's ring. ok is false when m is
// in no ring.
func Transmute(m world.Material) (next world.Material, ok bool) {
	next, ok = transmuteNext[m]
	return next, ok
}
