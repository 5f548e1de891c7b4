package rules

import (
	"github.com/KirkDiggler/nexus-classes/internal/domain/classes"
	"github.com/KirkDiggler/nexus-classes/internal/events"
)

// Kind classifies a rule for metrics and class definitions
type Kind string

const (
	KindPerk       Kind = "perk"
	KindWeakness   Kind = "weakness"
	KindProtection Kind = "protection"
)

// ClassMatch selects the classes a rule applies to
type ClassMatch struct {
	class  classes.Class
	negate bool
	any    bool
}

// Only matches exactly one class
func Only(c classes.Class) ClassMatch { return ClassMatch{class: c} }

// Except matches every class but c, Unassigned included
func Except(c classes.Class) ClassMatch { return ClassMatch{class: c, negate: true} }

// AnyClass matches every class
func AnyClass() ClassMatch { return ClassMatch{any: true} }

// Matches reports whether c is selected
func (m ClassMatch) Matches(c classes.Class) bool {
	switch {
	case m.any:
		return true
	case m.negate:
		return c != m.class
	default:
		return c == m.class
	}
}

// Rule is one row of the event rule table. Subject returns the participant
// whose class decides the rule, or "" when the event has none. Apply
// evaluates the rule's own guard and reports whether an effect was applied.
type Rule struct {
	ID          string
	Kind        Kind
	Triggers    []events.EventType
	Class       ClassMatch
	RegionGated bool
	Subject     func(events.Event) string
	Apply       func(e *Engine, event events.Event, subject string) bool
}
