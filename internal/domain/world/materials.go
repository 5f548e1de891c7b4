package world

// Material identifies a block or item type in the host world
type Material string

const (
	MaterialAir Material = "air"

	// Tools and class items
	MaterialStick      Material = "stick"
	MaterialEnderPearl Material = "ender_pearl"
	MaterialEmerald    Material = "emerald"

	// Transmutable blocks
	MaterialCobblestone  Material = "cobblestone"
	MaterialStone        Material = "stone"
	MaterialStoneBricks  Material = "stone_bricks"
	MaterialObsidian     Material = "obsidian"
	MaterialDeepslate    Material = "deepslate"
	MaterialTuff         Material = "tuff"
	MaterialNetherBricks Material = "nether_bricks"
	MaterialBlackstone   Material = "blackstone"

	// Ores
	MaterialCoalOre     Material = "coal_ore"
	MaterialGoldOre     Material = "gold_ore"
	MaterialLapisOre    Material = "lapis_ore"
	MaterialRedstoneOre Material = "redstone_ore"
	MaterialIronOre     Material = "iron_ore"
	MaterialDiamondOre  Material = "diamond_ore"

	// Golden weapons and tools
	MaterialGoldenSword   Material = "golden_sword"
	MaterialGoldenAxe     Material = "golden_axe"
	MaterialGoldenPickaxe Material = "golden_pickaxe"
	MaterialGoldenShovel  Material = "golden_shovel"
	MaterialGoldenHoe     Material = "golden_hoe"

	// Iron weapons and tools
	MaterialIronSword   Material = "iron_sword"
	MaterialIronAxe     Material = "iron_axe"
	MaterialIronPickaxe Material = "iron_pickaxe"
	MaterialIronShovel  Material = "iron_shovel"
	MaterialIronHoe     Material = "iron_hoe"

	// Iron armor
	MaterialIronHelmet     Material = "iron_helmet"
	MaterialIronChestplate Material = "iron_chestplate"
	MaterialIronLeggings   Material = "iron_leggings"
	MaterialIronBoots      Material = "iron_boots"

	MaterialLeatherHelmet Material = "leather_helmet"
)

var (
	goldenWeapons = map[Material]bool{
		MaterialGoldenSword:   true,
		MaterialGoldenAxe:     true,
		MaterialGoldenPickaxe: true,
		MaterialGoldenShovel:  true,
		MaterialGoldenHoe:     true,
	}

	ironWeapons = map[Material]bool{
		MaterialIronSword:   true,
		MaterialIronAxe:     true,
		MaterialIronPickaxe: true,
		MaterialIronShovel:  true,
		MaterialIronHoe:     true,
	}

	ironArmor = map[Material]bool{
		MaterialIronHelmet:     true,
		MaterialIronChestplate: true,
		MaterialIronLeggings:   true,
		MaterialIronBoots:      true,
	}
)

// IsGoldenWeapon reports whether m is one of the golden weapons/tools
func (m Material) IsGoldenWeapon() bool {
	return goldenWeapons[m]
}

// IsIronWeapon reports whether m is one of the iron weapons/tools
func (m Material) IsIronWeapon() bool {
	return ironWeapons[m]
}

// IsIronArmor reports whether m is an iron armor piece
func (m Material) IsIronArmor() bool {
	return ironArmor[m]
}
