package rules

import (
	"github.com/KirkDiggler/nexus-classes/internal/config"
	"github.com/KirkDiggler/nexus-classes/internal/domain/classes"
	"github.com/KirkDiggler/nexus-classes/internal/domain/world"
	"github.com/KirkDiggler/nexus-classes/internal/events"
	"github.com/KirkDiggler/nexus-classes/internal/feedback"
	"github.com/KirkDiggler/nexus-classes/internal/markeditems"
	"github.com/KirkDiggler/nexus-classes/internal/metrics"
	"github.com/KirkDiggler/nexus-classes/internal/registry"
)

// ListenerID identifies the engine on the event bus
const ListenerID = "class-rule-engine"

// ClassRegistry is the registry view the engine reads
type ClassRegistry interface {
	GetOrCreate(id string) registry.ParticipantState
	ClassOf(id string) classes.Class
	IsRegionEnabled(region world.RegionID) bool
}

// EngineConfig holds dependencies for the engine
type EngineConfig struct {
	Registry ClassRegistry
	Items    *markeditems.Manager
	Feedback *feedback.Sender
	Host     world.Host
	Tuning   config.Tuning
	// Rules overrides the built-in table, used by tests
	Rules []*Rule
}

// Engine evaluates inbound events against the class rule table. It keeps
// no state between events.
type Engine struct {
	registry ClassRegistry
	items    *markeditems.Manager
	feedback *feedback.Sender
	host     world.Host
	tuning   config.Tuning
	byType   map[events.EventType][]*Rule
}

// Result lists the rules that applied an effect to one event
type Result struct {
	Fired []string
}

// NewEngine creates a rule engine
func NewEngine(cfg *EngineConfig) *Engine {
	if cfg.Registry == nil {
		panic("registry is required")
	}
	if cfg.Items == nil {
		panic("marked item manager is required")
	}
	if cfg.Host == nil {
		panic("host is required")
	}

	sender := cfg.Feedback
	if sender == nil {
		sender = feedback.NewSender(cfg.Registry)
	}

	table := cfg.Rules
	if table == nil {
		table = Table()
	}

	e := &Engine{
		registry: cfg.Registry,
		items:    cfg.Items,
		feedback: sender,
		host:     cfg.Host,
		tuning:   cfg.Tuning,
		byType:   make(map[events.EventType][]*Rule),
	}
	for _, rule := range table {
		for _, t := range rule.Triggers {
			e.byType[t] = append(e.byType[t], rule)
		}
	}
	return e
}

// ID implements events.EventListener
func (e *Engine) ID() string { return ListenerID }

// Priority implements events.EventListener
func (e *Engine) Priority() int { return events.PriorityClassRules }

// ObservesCancelled implements events.CancelledObserver. Protection rules
// run on cancelled events; perks and weaknesses do not.
func (e *Engine) ObservesCancelled() bool { return true }

// HandleEvent implements events.EventListener
func (e *Engine) HandleEvent(event events.Event) error {
	e.Evaluate(event)
	return nil
}

// Evaluate runs every rule triggered by the event type in table order.
// Once the event is cancelled, whether by a rule or by the host before it
// arrived, only protection rules still run. An event no rule matches passes
// through untouched.
func (e *Engine) Evaluate(event events.Event) Result {
	var result Result

	for _, rule := range e.byType[event.GetType()] {
		if event.IsCancelled() && rule.Kind != KindProtection {
			continue
		}

		subject := rule.Subject(event)
		if subject == "" {
			continue
		}
		if !rule.Class.Matches(e.registry.ClassOf(subject)) {
			continue
		}
		if rule.RegionGated && !e.registry.IsRegionEnabled(event.GetRegion()) {
			metrics.RuleRegionSkipped.WithLabelValues(rule.ID).Inc()
			continue
		}

		if rule.Apply(e, event, subject) {
			metrics.RuleFired.WithLabelValues(rule.ID, string(rule.Kind)).Inc()
			result.Fired = append(result.Fired, rule.ID)
		}
	}

	return result
}

// IDs returns the ids of the built-in rules
func IDs() []string {
	table := Table()
	ids := make([]string, 0, len(table))
	for _, rule := range table {
		ids = append(ids, rule.ID)
	}
	return ids
}
