package world

// RegionID identifies a partition of the world ("world" in host terms)
type RegionID string

// Location is a point inside a region
type Location struct {
	Region RegionID `json:"region"`
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	Z      float64  `json:"z"`
}

// BlockPos is an integer block coordinate
type BlockPos struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Center returns the location at the middle of the block
func (p BlockPos) Center(region RegionID) Location {
	return Location{
		Region: region,
		X:      float64(p.X) + 0.5,
		Y:      float64(p.Y) + 0.5,
		Z:      float64(p.Z) + 0.5,
	}
}

// Block is a single placed block. Rules that transform a block mutate Type
// and the host applies the change from the returned event.
type Block struct {
	Region RegionID `json:"region"`
	Pos    BlockPos `json:"pos"`
	Type   Material `json:"type"`
}

// Center returns the block's center location
func (b *Block) Center() Location {
	return b.Pos.Center(b.Region)
}

// GameMode is the host game mode of a participant
type GameMode string

const (
	GameModeSurvival  GameMode = "survival"
	GameModeCreative  GameMode = "creative"
	GameModeAdventure GameMode = "adventure"
	GameModeSpectator GameMode = "spectator"
)

// Unlimited reports whether the mode grants unlimited resources
func (m GameMode) Unlimited() bool {
	return m == GameModeCreative
}

// Environment is the host's view of what surrounds a participant this tick
type Environment struct {
	InWater  bool `json:"in_water"`
	OpenSky  bool `json:"open_sky"`
	Daylight bool `json:"daylight"`
}

// Participant is an online actor that can hold a class
type Participant struct {
	ID          string           `json:"id"`
	Name        string           `json:"name,omitempty"`
	Location    Location         `json:"location"`
	GameMode    GameMode         `json:"game_mode"`
	Inventory   *Inventory       `json:"inventory"`
	Cooldowns   map[Material]int `json:"cooldowns,omitempty"`
	Environment Environment      `json:"environment"`
}

// Region returns the region the participant is standing in
func (p *Participant) Region() RegionID {
	return p.Location.Region
}

// HasCooldown reports whether the material is on an active use cooldown
func (p *Participant) HasCooldown(m Material) bool {
	return p.Cooldowns[m] > 0
}

// HeldItem returns the main hand stack, or nil
func (p *Participant) HeldItem() *ItemStack {
	if p == nil {
		return nil
	}
	return p.Inventory.Held()
}

// EntityKind is the host entity type
type EntityKind string

const (
	EntityPlayer          EntityKind = "player"
	EntityZombie          EntityKind = "zombie"
	EntityHusk            EntityKind = "husk"
	EntityDrowned         EntityKind = "drowned"
	EntityZombieVillager  EntityKind = "zombie_villager"
	EntityZombifiedPiglin EntityKind = "zombified_piglin"
	EntitySkeleton        EntityKind = "skeleton"
	EntityCreeper         EntityKind = "creeper"
	EntitySpider          EntityKind = "spider"
)

// IsZombie reports whether the kind belongs to the zombie category
func (k EntityKind) IsZombie() bool {
	switch k {
	case EntityZombie, EntityHusk, EntityDrowned, EntityZombieVillager, EntityZombifiedPiglin:
		return true
	}
	return false
}

// Entity is any living thing involved in an event. Participant is set when
// the entity is a player.
type Entity struct {
	ID          string       `json:"id"`
	Kind        EntityKind   `json:"kind"`
	Location    Location     `json:"location"`
	FireTicks   int          `json:"fire_ticks,omitempty"`
	Held        *ItemStack   `json:"held,omitempty"`
	Participant *Participant `json:"participant,omitempty"`
}

// HeldItem returns what the entity carries in its main hand
func (e *Entity) HeldItem() *ItemStack {
	if e == nil {
		return nil
	}
	if e.Participant != nil {
		return e.Participant.HeldItem()
	}
	if e.Held.IsEmpty() {
		return nil
	}
	return e.Held
}

// DamageCause is why damage was dealt
type DamageCause string

const (
	DamageFall         DamageCause = "fall"
	DamageFire         DamageCause = "fire"
	DamageFireTick     DamageCause = "fire_tick"
	DamageLava         DamageCause = "lava"
	DamageEntityAttack DamageCause = "entity_attack"
	DamageProjectile   DamageCause = "projectile"
	DamageDrowning     DamageCause = "drowning"
	DamageMagic        DamageCause = "magic"
)

// InteractAction is the kind of click in an interact event
type InteractAction string

const (
	RightClickAir   InteractAction = "right_click_air"
	RightClickBlock InteractAction = "right_click_block"
	LeftClickAir    InteractAction = "left_click_air"
	LeftClickBlock  InteractAction = "left_click_block"
)

// IsRightClick reports whether the action is any right click
func (a InteractAction) IsRightClick() bool {
	return a == RightClickAir || a == RightClickBlock
}

// Hand is the hand an interaction was performed with
type Hand string

const (
	HandMain Hand = "main"
	HandOff  Hand = "off"
)

// StatusEffect is a timed potion-like effect
type StatusEffect string

const (
	StatusNightVision   StatusEffect = "night_vision"
	StatusStrength      StatusEffect = "strength"
	StatusMiningFatigue StatusEffect = "mining_fatigue"
	StatusSlowness      StatusEffect = "slowness"
)
