package world

// ItemStack is a quantity of one material plus the metadata the host item
// model carries for it. Tags is opaque key/value metadata that survives
// renames and is never shown to players.
type ItemStack struct {
	Material    Material          `json:"material"`
	Amount      int               `json:"amount"`
	DisplayName string            `json:"display_name,omitempty"`
	Lore        []string          `json:"lore,omitempty"`
	Glint       bool              `json:"glint,omitempty"`
	Tags        map[string]string `json:"tags,omitempty"`
}

// NewItemStack creates a plain stack of the given material
func NewItemStack(material Material, amount int) *ItemStack {
	return &ItemStack{
		Material: material,
		Amount:   amount,
	}
}

// IsEmpty reports whether the stack holds nothing
func (s *ItemStack) IsEmpty() bool {
	return s == nil || s.Material == MaterialAir || s.Material == "" || s.Amount <= 0
}

// Tag returns the metadata value stored under key
func (s *ItemStack) Tag(key string) (string, bool) {
	if s == nil || s.Tags == nil {
		return "", false
	}
	v, ok := s.Tags[key]
	return v, ok
}

// SetTag stores a metadata value
func (s *ItemStack) SetTag(key, value string) {
	if s.Tags == nil {
		s.Tags = make(map[string]string)
	}
	s.Tags[key] = value
}

// Clone returns a deep copy of the stack
func (s *ItemStack) Clone() *ItemStack {
	if s == nil {
		return nil
	}
	c := *s
	if s.Lore != nil {
		c.Lore = append([]string(nil), s.Lore...)
	}
	if s.Tags != nil {
		c.Tags = make(map[string]string, len(s.Tags))
		for k, v := range s.Tags {
			c.Tags[k] = v
		}
	}
	return &c
}
