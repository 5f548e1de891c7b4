package bridge

import (
	"encoding/json"

	"github.com/KirkDiggler/nexus-classes/internal/domain/world"
	"github.com/KirkDiggler/nexus-classes/internal/events"
	"github.com/KirkDiggler/nexus-classes/internal/scheduler"
)

// ProtocolVersion is the host bridge wire version
const ProtocolVersion = "1"

// Message types
const (
	TypeHello         = "hello"
	TypeWelcome       = "welcome"
	TypeEvent         = "event"
	TypeOutcome       = "outcome"
	TypeTick          = "tick"
	TypeTickActions   = "tick_actions"
	TypeCommand       = "command"
	TypeCommandResult = "command_result"
	TypeError         = "error"
)

// BaseMessage lets the server route messages by type
type BaseMessage struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version,omitempty"`
}

// DecodeBase reads only the routing fields of a message
func DecodeBase(b []byte) (BaseMessage, error) {
	var m BaseMessage
	err := json.Unmarshal(b, &m)
	return m, err
}

// HelloMsg opens a host connection (host -> service)
type HelloMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	HostName        string `json:"host_name"`
}

// WelcomeMsg answers hello with the static class data (service -> host)
type WelcomeMsg struct {
	Type            string   `json:"type"`
	ProtocolVersion string   `json:"protocol_version"`
	Classes         []string `json:"classes"`
	Rules           []string `json:"rules"`
	Effects         []string `json:"effects"`
	EnabledRegions  []string `json:"enabled_regions"`
}

// EventMsg carries one world event for rule evaluation (host -> service)
type EventMsg struct {
	Type      string           `json:"type"`
	Seq       int64            `json:"seq"`
	EventType events.EventType `json:"event_type"`
	Event     json.RawMessage  `json:"event"`
}

// OutcomeMsg returns the evaluated event. Event holds the possibly mutated
// body, for example a changed damage amount. (service -> host)
type OutcomeMsg struct {
	Type      string          `json:"type"`
	Seq       int64           `json:"seq"`
	Cancelled bool            `json:"cancelled"`
	Fired     []string        `json:"fired,omitempty"`
	Event     json.RawMessage `json:"event,omitempty"`
	Actions   []world.Action  `json:"actions"`
}

// TickMsg drives the periodic scheduler with the online roster (host -> service)
type TickMsg struct {
	Type         string               `json:"type"`
	Tick         int64                `json:"tick"`
	Participants []*world.Participant `json:"participants"`
}

// TickActionsMsg lists what a tick applied (service -> host)
type TickActionsMsg struct {
	Type    string             `json:"type"`
	Tick    int64              `json:"tick"`
	Fired   []scheduler.Firing `json:"fired,omitempty"`
	Actions []world.Action     `json:"actions"`
}

// Command names understood by the bridge
const (
	CommandChoose = "choose"
	CommandSet    = "set"
	CommandGet    = "get"
	CommandItem   = "item"
	CommandWorld  = "world"
	CommandDebug  = "debug"
	CommandPerks  = "perks"
)

// CommandMsg is a player-issued class command (host -> service). Args keys
// are "class", "target", "region" and "enabled" depending on the command.
type CommandMsg struct {
	Type          string             `json:"type"`
	Seq           int64              `json:"seq"`
	Name          string             `json:"name"`
	ParticipantID string             `json:"participant_id"`
	Participant   *world.Participant `json:"participant,omitempty"`
	Args          map[string]string  `json:"args,omitempty"`
}

// CommandResultMsg answers a command (service -> host). Participant is the
// sender's state after the command when it changed their inventory.
type CommandResultMsg struct {
	Type        string             `json:"type"`
	Seq         int64              `json:"seq"`
	OK          bool               `json:"ok"`
	Message     string             `json:"message"`
	Code        string             `json:"code,omitempty"`
	Participant *world.Participant `json:"participant,omitempty"`
	Actions     []world.Action     `json:"actions"`
}

// ErrorMsg reports a message the service could not process
type ErrorMsg struct {
	Type    string `json:"type"`
	Seq     int64  `json:"seq,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
