package markeditems

import (
	"log"

	"github.com/KirkDiggler/nexus-classes/internal/domain/classes"
	"github.com/KirkDiggler/nexus-classes/internal/domain/world"
	apperr "github.com/KirkDiggler/nexus-classes/internal/errors"
	"github.com/KirkDiggler/nexus-classes/internal/metrics"
)

// MarkerTag is the item tag key binding a stack to its owner class. The
// value is the class name.
const MarkerTag = "nexus:class_item"

// Decision is the verdict of a protection hook
type Decision string

const (
	Allow   Decision = "allow"
	Deny    Decision = "deny"
	Destroy Decision = "destroy"
)

// Hook names used for metrics
const (
	HookTransfer = "transfer"
	HookDrag     = "drag"
	HookDrop     = "drop"
)

// ClassResolver resolves the class of a participant
type ClassResolver interface {
	ClassOf(id string) classes.Class
}

// Manager mints class-bound items and enforces their protection rules
type Manager struct {
	classes ClassResolver
}

// NewManager creates a manager resolving classes through resolver
func NewManager(resolver ClassResolver) *Manager {
	if resolver == nil {
		panic("class resolver is required")
	}
	return &Manager{classes: resolver}
}

// NewItem builds one unit of the class's marked item. It returns nil for
// classes without a marked item.
func NewItem(class classes.Class) *world.ItemStack {
	def := classes.MarkedItem(class)
	if def == nil {
		return nil
	}

	item := world.NewItemStack(def.Material, 1)
	item.DisplayName = def.DisplayName
	item.Lore = []string{def.Description}
	item.Glint = true
	item.SetTag(MarkerTag, string(class))
	return item
}

// IsMarked reports whether the stack carries the marker and which class it
// is bound to. Display names play no part.
func IsMarked(item *world.ItemStack) (classes.Class, bool) {
	if item.IsEmpty() {
		return classes.Unassigned, false
	}
	value, ok := item.Tag(MarkerTag)
	if !ok {
		return classes.Unassigned, false
	}
	owner, err := classes.Parse(value)
	if err != nil || classes.MarkedItem(owner) == nil {
		return classes.Unassigned, false
	}
	return owner, true
}

// IsMarkedFor reports whether the stack is the marked item of class
func IsMarkedFor(item *world.ItemStack, class classes.Class) bool {
	owner, ok := IsMarked(item)
	return ok && owner == class
}

// Holds reports whether the inventory contains the class's marked item
func Holds(inv *world.Inventory, class classes.Class) bool {
	return inv.Find(func(s *world.ItemStack) bool { return IsMarkedFor(s, class) }) != nil
}

// IsMarked is a convenience wrapper over the package function
func (m *Manager) IsMarked(item *world.ItemStack) (classes.Class, bool) {
	return IsMarked(item)
}

// Grant delivers one marked item of class to the participant unless they
// already hold one. Classes without a marked item are a no-op.
func (m *Manager) Grant(p *world.Participant, class classes.Class) error {
	item := NewItem(class)
	if item == nil {
		return nil
	}
	if p == nil || p.Inventory == nil {
		return apperr.InvalidArgument("participant inventory is required")
	}

	if Holds(p.Inventory, class) {
		return apperr.AlreadyHeld(p.ID, string(class))
	}

	if !p.Inventory.Add(item) {
		return apperr.Unavailablef("inventory of %s is full", p.ID).
			WithMeta("participant_id", p.ID)
	}

	log.Printf("MarkedItems: Granted %s class item to %s", class, p.ID)
	return nil
}

// OnTransferAttempt guards click and shift-click moves. Marked items may be
// rearranged inside their holder's own inventory only.
func (m *Manager) OnTransferAttempt(p *world.Participant, item *world.ItemStack, destinationIsOwn bool) Decision {
	return m.guardMove(HookTransfer, item, destinationIsOwn)
}

// OnDragAttempt guards drags the same way as transfers
func (m *Manager) OnDragAttempt(p *world.Participant, item *world.ItemStack, destinationIsOwn bool) Decision {
	return m.guardMove(HookDrag, item, destinationIsOwn)
}

// OnDropAttempt denies drops by the owning class and destroys the dropped
// instance when anyone else drops it
func (m *Manager) OnDropAttempt(p *world.Participant, item *world.ItemStack) Decision {
	owner, ok := IsMarked(item)
	if !ok {
		return Allow
	}

	decision := Destroy
	if p != nil && m.classes.ClassOf(p.ID) == owner {
		decision = Deny
	}
	metrics.MarkedItemDecisions.WithLabelValues(HookDrop, string(decision)).Inc()
	return decision
}

func (m *Manager) guardMove(hook string, item *world.ItemStack, destinationIsOwn bool) Decision {
	if _, ok := IsMarked(item); !ok {
		return Allow
	}

	decision := Allow
	if !destinationIsOwn {
		decision = Deny
	}
	metrics.MarkedItemDecisions.WithLabelValues(hook, string(decision)).Inc()
	return decision
}
