package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/nexus-classes/internal/domain/classes"
	"github.com/KirkDiggler/nexus-classes/internal/domain/world"
	apperr "github.com/KirkDiggler/nexus-classes/internal/errors"
	"github.com/KirkDiggler/nexus-classes/internal/events"
	"github.com/KirkDiggler/nexus-classes/internal/feedback"
	"github.com/KirkDiggler/nexus-classes/internal/registry"
	"github.com/KirkDiggler/nexus-classes/internal/rules"
	"github.com/KirkDiggler/nexus-classes/internal/scheduler"
	classservice "github.com/KirkDiggler/nexus-classes/internal/services/classes"
)

const defaultInboxSize = 64

// RegionLister exposes the enabled regions for the welcome message
type RegionLister interface {
	EnabledRegions() []world.RegionID
}

// SimulationConfig holds the dependencies of a Simulation
type SimulationConfig struct {
	Engine    *rules.Engine
	Scheduler *scheduler.Scheduler
	// Recorder must be the Host the engine and scheduler were built with
	Recorder  *world.Recorder
	Commands  classservice.Service
	Regions   RegionLister
	InboxSize int
}

type request struct {
	fn   func()
	done chan struct{}
}

// Simulation owns the rule engine and the scheduler. Every bridge request
// runs on its single goroutine, in arrival order.
type Simulation struct {
	bus       *events.Bus
	rules     *ruleListener
	scheduler *scheduler.Scheduler
	recorder  *world.Recorder
	commands  classservice.Service
	regions   RegionLister
	inbox     chan request
}

// NewSimulation creates a simulation. Run must be started before requests
// are submitted.
func NewSimulation(cfg *SimulationConfig) *Simulation {
	if cfg == nil {
		panic("config cannot be nil")
	}
	if cfg.Engine == nil {
		panic("engine is required")
	}
	if cfg.Scheduler == nil {
		panic("scheduler is required")
	}
	if cfg.Recorder == nil {
		panic("recorder is required")
	}
	if cfg.Commands == nil {
		panic("command service is required")
	}
	if cfg.Regions == nil {
		panic("region lister is required")
	}

	size := cfg.InboxSize
	if size <= 0 {
		size = defaultInboxSize
	}

	listener := &ruleListener{engine: cfg.Engine}
	bus := events.NewBus()
	bus.SubscribeAll(listener)

	return &Simulation{
		bus:       bus,
		rules:     listener,
		scheduler: cfg.Scheduler,
		recorder:  cfg.Recorder,
		commands:  cfg.Commands,
		regions:   cfg.Regions,
		inbox:     make(chan request, size),
	}
}

// Run processes requests until ctx is done
func (s *Simulation) Run(ctx context.Context) error {
	log.Printf("Simulation: Started")
	for {
		select {
		case <-ctx.Done():
			log.Printf("Simulation: Stopped")
			return nil
		case req := <-s.inbox:
			req.fn()
			close(req.done)
		}
	}
}

func (s *Simulation) do(ctx context.Context, fn func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	req := request{fn: fn, done: make(chan struct{})}
	select {
	case s.inbox <- req:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-req.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Welcome describes the classes, rules and effects this service runs
func (s *Simulation) Welcome() *WelcomeMsg {
	names := make([]string, 0, len(classes.All))
	for _, c := range classes.All {
		names = append(names, c.String())
	}

	enabled := s.regions.EnabledRegions()
	regions := make([]string, 0, len(enabled))
	for _, r := range enabled {
		regions = append(regions, string(r))
	}

	return &WelcomeMsg{
		Type:            TypeWelcome,
		ProtocolVersion: ProtocolVersion,
		Classes:         names,
		Rules:           rules.IDs(),
		Effects:         scheduler.IDs(),
		EnabledRegions:  regions,
	}
}

// HandleEvent evaluates one world event and returns its outcome
func (s *Simulation) HandleEvent(ctx context.Context, msg *EventMsg) (*OutcomeMsg, error) {
	event, err := events.Decode(msg.EventType, msg.Event)
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeInvalidArgument, "invalid event")
	}

	out := &OutcomeMsg{Type: TypeOutcome, Seq: msg.Seq}
	var emitErr error
	err = s.do(ctx, func() {
		s.rules.last = rules.Result{}
		emitErr = s.bus.Emit(event)
		out.Fired = s.rules.last.Fired
		out.Actions = s.recorder.Drain()
	})
	if err != nil {
		return nil, err
	}
	if emitErr != nil {
		return nil, apperr.WrapWithCode(emitErr, apperr.CodeInternal, "event dispatch failed")
	}

	out.Cancelled = event.IsCancelled()
	body, err := json.Marshal(event)
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to encode event")
	}
	out.Event = body
	if out.Actions == nil {
		out.Actions = []world.Action{}
	}
	return out, nil
}

// HandleTick runs the periodic scheduler for one tick
func (s *Simulation) HandleTick(ctx context.Context, msg *TickMsg) (*TickActionsMsg, error) {
	out := &TickActionsMsg{Type: TypeTickActions, Tick: msg.Tick}
	err := s.do(ctx, func() {
		out.Fired = s.scheduler.Tick(msg.Tick, msg.Participants)
		out.Actions = s.recorder.Drain()
	})
	if err != nil {
		return nil, err
	}
	if out.Actions == nil {
		out.Actions = []world.Action{}
	}
	return out, nil
}

// HandleCommand runs a player-issued class command. Command failures are
// reported in the result, not as an error.
func (s *Simulation) HandleCommand(ctx context.Context, msg *CommandMsg) (*CommandResultMsg, error) {
	out := &CommandResultMsg{Type: TypeCommandResult, Seq: msg.Seq}
	err := s.do(ctx, func() {
		message, cmdErr := s.runCommand(ctx, msg, out)
		if cmdErr != nil {
			out.Code = string(apperr.GetCode(cmdErr))
			out.Message = cmdErr.Error()
		} else {
			out.OK = true
			out.Message = message
		}
		out.Actions = s.recorder.Drain()
	})
	if err != nil {
		return nil, err
	}
	if out.Actions == nil {
		out.Actions = []world.Action{}
	}
	return out, nil
}

func (s *Simulation) runCommand(ctx context.Context, msg *CommandMsg, out *CommandResultMsg) (string, error) {
	args := msg.Args
	switch strings.ToLower(msg.Name) {
	case CommandChoose:
		state, err := s.commands.AssignClass(ctx, msg.ParticipantID, args["class"])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Your class is now %s", state.Class), nil

	case CommandSet:
		target := args["target"]
		state, err := s.commands.AssignClass(ctx, target, args["class"])
		if err != nil {
			return "", err
		}
		feedback.Notice(s.recorder, state.ID, "Your class has been set to %s", state.Class)
		return fmt.Sprintf("Set %s's class to %s", state.ID, state.Class), nil

	case CommandGet:
		target := args["target"]
		if target == "" {
			class, err := s.commands.QueryClass(ctx, msg.ParticipantID)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Your class is %s", class), nil
		}
		class, err := s.commands.QueryClass(ctx, target)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s's class is %s", target, class), nil

	case CommandItem:
		if msg.Participant == nil {
			return "", apperr.InvalidArgument("participant state is required for item")
		}
		grant, err := s.commands.GrantMarkedItemIfEligible(ctx, msg.Participant)
		if apperr.IsAlreadyHeld(err) {
			return "You already have your class item", nil
		}
		if err != nil {
			return "", err
		}
		if !grant.Granted {
			return fmt.Sprintf("Class %s doesn't have a class item", grant.Class), nil
		}
		out.Participant = msg.Participant
		return fmt.Sprintf("You received the %s class item", grant.Class), nil

	case CommandWorld:
		region := args["region"]
		if region == "" && msg.Participant != nil {
			region = string(msg.Participant.Region())
		}
		raw, set := args["enabled"]
		if !set {
			enabled, err := s.commands.QueryRegionEnabled(ctx, region)
			if err != nil {
				return "", err
			}
			if enabled {
				return "Class effects are enabled in this world", nil
			}
			return "Class effects are disabled in this world", nil
		}
		enabled, err := ParseToggle(raw)
		if err != nil {
			return "", err
		}
		if err := s.commands.SetRegionEnabled(ctx, region, enabled); err != nil {
			return "", err
		}
		if enabled {
			return "Class effects enabled for this world", nil
		}
		return "Class effects disabled for this world", nil

	case CommandDebug, CommandPerks:
		enabled, err := ParseToggle(args["enabled"])
		if err != nil {
			return "", err
		}
		key, noun := registry.PreferenceDebugFeedback, "debug"
		if strings.EqualFold(msg.Name, CommandPerks) {
			key, noun = registry.PreferencePerkFeedback, "perk"
		}
		if _, err := s.commands.SetPreference(ctx, msg.ParticipantID, key, enabled); err != nil {
			return "", err
		}
		if enabled {
			return fmt.Sprintf("You will now receive %s messages", noun), nil
		}
		return fmt.Sprintf("You will no longer receive %s messages", noun), nil

	default:
		return "", apperr.InvalidArgumentf("unknown command %q", msg.Name)
	}
}

// ParseToggle reads an on/off argument
func ParseToggle(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "yes", "on", "1", "enable", "enabled":
		return true, nil
	case "false", "no", "off", "0", "disable", "disabled":
		return false, nil
	default:
		return false, apperr.InvalidArgumentf("expected on or off, got %q", raw)
	}
}

// ruleListener puts the engine on the bus and keeps the result of the
// event being dispatched. Only the simulation goroutine touches last.
type ruleListener struct {
	engine *rules.Engine
	last   rules.Result
}

func (l *ruleListener) ID() string { return l.engine.ID() }

func (l *ruleListener) Priority() int { return l.engine.Priority() }

func (l *ruleListener) ObservesCancelled() bool { return l.engine.ObservesCancelled() }

func (l *ruleListener) HandleEvent(event events.Event) error {
	l.last = l.engine.Evaluate(event)
	return nil
}
