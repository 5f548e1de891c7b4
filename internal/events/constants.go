package events

// Event type constants
const (
	EventTypeDamage            EventType = "damage"
	EventTypeDamageByActor     EventType = "damage_by_actor"
	EventTypeInteract          EventType = "interact"
	EventTypeBlockBreak        EventType = "block_break"
	EventTypeDropItem          EventType = "drop_item"
	EventTypeInventoryTransfer EventType = "inventory_transfer"
	EventTypeInventoryDrag     EventType = "inventory_drag"
)

// AllEventTypes lists every inbound event type
var AllEventTypes = []EventType{
	EventTypeDamage,
	EventTypeDamageByActor,
	EventTypeInteract,
	EventTypeBlockBreak,
	EventTypeDropItem,
	EventTypeInventoryTransfer,
	EventTypeInventoryDrag,
}

// Priority levels for listener order
const (
	PriorityProtection = 0   // Marked item guards
	PriorityClassRules = 100 // Class perks and weaknesses
	PriorityObservers  = 500 // Metrics, audit
)
