package world

import "sync"

// Host is the effect sink exposed by the host world. Rules and periodic
// effects never touch the world directly; they ask the host to do it.
type Host interface {
	DropItem(at Location, item *ItemStack)
	SpawnParticles(at Location, particle string, count int, data Material)
	PlaySound(at Location, sound string)
	SendMessage(participantID, message string)
	Damage(targetID string, amount float64)
	Ignite(targetID string, ticks int)
	ApplyStatus(targetID string, effect StatusEffect, durationTicks, amplifier int)
}

// ActionType names a recorded host action
type ActionType string

const (
	ActionDropItem       ActionType = "drop_item"
	ActionSpawnParticles ActionType = "spawn_particles"
	ActionPlaySound      ActionType = "play_sound"
	ActionSendMessage    ActionType = "send_message"
	ActionDamage         ActionType = "damage"
	ActionIgnite         ActionType = "ignite"
	ActionApplyStatus    ActionType = "apply_status"
)

// Action is one serializable host instruction
type Action struct {
	Type      ActionType   `json:"type"`
	Target    string       `json:"target,omitempty"`
	Location  *Location    `json:"location,omitempty"`
	Item      *ItemStack   `json:"item,omitempty"`
	Particle  string       `json:"particle,omitempty"`
	Count     int          `json:"count,omitempty"`
	Data      Material     `json:"data,omitempty"`
	Sound     string       `json:"sound,omitempty"`
	Message   string       `json:"message,omitempty"`
	Amount    float64      `json:"amount,omitempty"`
	Ticks     int          `json:"ticks,omitempty"`
	Status    StatusEffect `json:"status,omitempty"`
	Amplifier int          `json:"amplifier,omitempty"`
}

// Recorder is a Host that records every action for later delivery
type Recorder struct {
	mu      sync.Mutex
	actions []Action
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(a Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, a)
}

// Actions returns a copy of the recorded actions
func (r *Recorder) Actions() []Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Action, len(r.actions))
	copy(out, r.actions)
	return out
}

// Drain returns the recorded actions and resets the recorder
func (r *Recorder) Drain() []Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.actions
	r.actions = nil
	return out
}

// OfType returns recorded actions with the given type
func (r *Recorder) OfType(t ActionType) []Action {
	var out []Action
	for _, a := range r.Actions() {
		if a.Type == t {
			out = append(out, a)
		}
	}
	return out
}

func (r *Recorder) DropItem(at Location, item *ItemStack) {
	r.record(Action{Type: ActionDropItem, Location: &at, Item: item.Clone()})
}

func (r *Recorder) SpawnParticles(at Location, particle string, count int, data Material) {
	r.record(Action{Type: ActionSpawnParticles, Location: &at, Particle: particle, Count: count, Data: data})
}

func (r *Recorder) PlaySound(at Location, sound string) {
	r.record(Action{Type: ActionPlaySound, Location: &at, Sound: sound})
}

func (r *Recorder) SendMessage(participantID, message string) {
	r.record(Action{Type: ActionSendMessage, Target: participantID, Message: message})
}

func (r *Recorder) Damage(targetID string, amount float64) {
	r.record(Action{Type: ActionDamage, Target: targetID, Amount: amount})
}

func (r *Recorder) Ignite(targetID string, ticks int) {
	r.record(Action{Type: ActionIgnite, Target: targetID, Ticks: ticks})
}

func (r *Recorder) ApplyStatus(targetID string, effect StatusEffect, durationTicks, amplifier int) {
	r.record(Action{Type: ActionApplyStatus, Target: targetID, Status: effect, Ticks: durationTicks, Amplifier: amplifier})
}

var _ Host = (*Recorder)(nil)
