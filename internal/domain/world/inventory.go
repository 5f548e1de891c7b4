package world

// DefaultInventorySize matches a player inventory without armor slots
const DefaultInventorySize = 36

// ArmorSlot indexes Inventory.Armor
type ArmorSlot int

const (
	ArmorBoots ArmorSlot = iota
	ArmorLeggings
	ArmorChestplate
	ArmorHelmet
)

// Inventory is a participant's item storage. Empty slots are nil.
type Inventory struct {
	OwnerID  string        `json:"owner_id"`
	Slots    []*ItemStack  `json:"slots"`
	HeldSlot int           `json:"held_slot"`
	Armor    [4]*ItemStack `json:"armor"`
}

// NewInventory creates an empty inventory with size slots
func NewInventory(ownerID string, size int) *Inventory {
	return &Inventory{
		OwnerID: ownerID,
		Slots:   make([]*ItemStack, size),
	}
}

// Held returns the stack in the main hand, or nil
func (inv *Inventory) Held() *ItemStack {
	if inv == nil || inv.HeldSlot < 0 || inv.HeldSlot >= len(inv.Slots) {
		return nil
	}
	stack := inv.Slots[inv.HeldSlot]
	if stack.IsEmpty() {
		return nil
	}
	return stack
}

// Helmet returns the worn helmet, or nil
func (inv *Inventory) Helmet() *ItemStack {
	if inv == nil || inv.Armor[ArmorHelmet].IsEmpty() {
		return nil
	}
	return inv.Armor[ArmorHelmet]
}

// Add places stack into the first empty slot. It returns false when the
// inventory is full.
func (inv *Inventory) Add(stack *ItemStack) bool {
	for i, slot := range inv.Slots {
		if slot.IsEmpty() {
			inv.Slots[i] = stack
			return true
		}
	}
	return false
}

// Find returns the first non-empty stack matching pred
func (inv *Inventory) Find(pred func(*ItemStack) bool) *ItemStack {
	if inv == nil {
		return nil
	}
	for _, slot := range inv.Slots {
		if !slot.IsEmpty() && pred(slot) {
			return slot
		}
	}
	return nil
}

// Count sums the amounts of all stacks matching pred
func (inv *Inventory) Count(pred func(*ItemStack) bool) int {
	if inv == nil {
		return 0
	}
	total := 0
	for _, slot := range inv.Slots {
		if !slot.IsEmpty() && pred(slot) {
			total += slot.Amount
		}
	}
	return total
}

// WearsArmor reports whether any worn armor piece matches pred
func (inv *Inventory) WearsArmor(pred func(Material) bool) bool {
	if inv == nil {
		return false
	}
	for _, piece := range inv.Armor {
		if !piece.IsEmpty() && pred(piece.Material) {
			return true
		}
	}
	return false
}
