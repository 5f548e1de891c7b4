package feedback

import (
	"fmt"

	"github.com/KirkDiggler/nexus-classes/internal/domain/world"
	"github.com/KirkDiggler/nexus-classes/internal/registry"
)

// Prefix starts every message sent to a participant
const Prefix = "[NexusClasses] "

// PreferenceSource resolves a participant's feedback preferences
type PreferenceSource interface {
	GetOrCreate(id string) registry.ParticipantState
}

// Sender delivers participant messages gated by their preferences. It only
// ever suppresses the message, never the effect that produced it.
type Sender struct {
	prefs PreferenceSource
}

// NewSender creates a sender reading preferences from prefs
func NewSender(prefs PreferenceSource) *Sender {
	return &Sender{prefs: prefs}
}

// Perk sends a perk or weakness message when the participant wants them
func (s *Sender) Perk(host world.Host, participantID, format string, args ...any) {
	if !s.prefs.GetOrCreate(participantID).Preferences.ShowPerkFeedback {
		return
	}
	host.SendMessage(participantID, Prefix+fmt.Sprintf(format, args...))
}

// Debug sends a diagnostic message when the participant opted in
func (s *Sender) Debug(host world.Host, participantID, format string, args ...any) {
	if !s.prefs.GetOrCreate(participantID).Preferences.ShowDebugFeedback {
		return
	}
	host.SendMessage(participantID, Prefix+"[debug] "+fmt.Sprintf(format, args...))
}

// Notice sends an unconditional message, used for command replies
func Notice(host world.Host, participantID, format string, args ...any) {
	host.SendMessage(participantID, Prefix+fmt.Sprintf(format, args...))
}
