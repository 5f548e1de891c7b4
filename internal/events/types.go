package events

import "github.com/KirkDiggler/nexus-classes/internal/domain/world"

// EventType represents the type of world event
type EventType string

// Event is the base interface for all inbound world events
type Event interface {
	GetType() EventType
	GetRegion() world.RegionID
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides the cancel/veto capability shared by all events
type BaseEvent struct {
	Type      EventType `json:"-"`
	Cancelled bool      `json:"cancelled"`
}

func (e *BaseEvent) GetType() EventType { return e.Type }
func (e *BaseEvent) IsCancelled() bool  { return e.Cancelled }
func (e *BaseEvent) Cancel()            { e.Cancelled = true }

// DamageEvent is emitted when an entity takes damage. Damage is mutable.
type DamageEvent struct {
	BaseEvent
	Target *world.Entity     `json:"target"`
	Cause  world.DamageCause `json:"cause"`
	Damage float64           `json:"damage"`
}

func (e *DamageEvent) GetRegion() world.RegionID {
	if e.Target == nil {
		return ""
	}
	return e.Target.Location.Region
}

// Damaged returns the damage event itself. DamageByActorEvent inherits it,
// so rules written against plain damage also see actor damage.
func (e *DamageEvent) Damaged() *DamageEvent { return e }

// DamageCarrier is implemented by every event that carries a DamageEvent
type DamageCarrier interface {
	Event
	Damaged() *DamageEvent
}

// DamageByActorEvent is a DamageEvent caused by another entity
type DamageByActorEvent struct {
	DamageEvent
	Actor *world.Entity `json:"actor"`
}

// InteractEvent is emitted when a participant clicks with an item
type InteractEvent struct {
	BaseEvent
	Actor        *world.Participant   `json:"actor"`
	Action       world.InteractAction `json:"action"`
	Hand         world.Hand           `json:"hand"`
	ClickedBlock *world.Block         `json:"clicked_block,omitempty"`
}

func (e *InteractEvent) GetRegion() world.RegionID { return actorRegion(e.Actor) }

// BlockBreakEvent is emitted when a participant breaks a block
type BlockBreakEvent struct {
	BaseEvent
	Actor *world.Participant `json:"actor"`
	Block *world.Block       `json:"block"`
}

func (e *BlockBreakEvent) GetRegion() world.RegionID {
	if e.Block != nil && e.Block.Region != "" {
		return e.Block.Region
	}
	return actorRegion(e.Actor)
}

// DropItemEvent is emitted when a participant drops a stack. RemoveDropped
// tells the host to delete the dropped entity instead of letting it land.
type DropItemEvent struct {
	BaseEvent
	Actor         *world.Participant `json:"actor"`
	Item          *world.ItemStack   `json:"item"`
	RemoveDropped bool               `json:"remove_dropped"`
}

func (e *DropItemEvent) GetRegion() world.RegionID { return actorRegion(e.Actor) }

// InventoryTransferEvent covers click and shift-click moves between
// inventories. Owners are participant ids; an empty owner is a world
// container.
type InventoryTransferEvent struct {
	BaseEvent
	Actor       *world.Participant `json:"actor"`
	Item        *world.ItemStack   `json:"item"`
	SourceOwner string             `json:"source_owner"`
	DestOwner   string             `json:"dest_owner"`
	ShiftClick  bool               `json:"shift_click"`
}

func (e *InventoryTransferEvent) GetRegion() world.RegionID { return actorRegion(e.Actor) }

// InventoryDragEvent is emitted when a dragged stack is spread over slots
type InventoryDragEvent struct {
	BaseEvent
	Actor     *world.Participant `json:"actor"`
	Item      *world.ItemStack   `json:"item"`
	DestOwner string             `json:"dest_owner"`
}

func (e *InventoryDragEvent) GetRegion() world.RegionID { return actorRegion(e.Actor) }

func actorRegion(p *world.Participant) world.RegionID {
	if p == nil {
		return ""
	}
	return p.Region()
}
