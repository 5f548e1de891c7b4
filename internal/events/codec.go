package events

import (
	"encoding/json"
	"fmt"
)

// New returns an empty event of the given type
func New(t EventType) (Event, error) {
	base := BaseEvent{Type: t}
	switch t {
	case EventTypeDamage:
		return &DamageEvent{BaseEvent: base}, nil
	case EventTypeDamageByActor:
		return &DamageByActorEvent{DamageEvent: DamageEvent{BaseEvent: base}}, nil
	case EventTypeInteract:
		return &InteractEvent{BaseEvent: base}, nil
	case EventTypeBlockBreak:
		return &BlockBreakEvent{BaseEvent: base}, nil
	case EventTypeDropItem:
		return &DropItemEvent{BaseEvent: base}, nil
	case EventTypeInventoryTransfer:
		return &InventoryTransferEvent{BaseEvent: base}, nil
	case EventTypeInventoryDrag:
		return &InventoryDragEvent{BaseEvent: base}, nil
	default:
		return nil, fmt.Errorf("unknown event type %q", t)
	}
}

// Decode builds an event of type t from its JSON body
func Decode(t EventType, data []byte) (Event, error) {
	event, err := New(t)
	if err != nil {
		return nil, err
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, event); err != nil {
			return nil, fmt.Errorf("failed to decode %s event: %w", t, err)
		}
	}
	return event, nil
}
