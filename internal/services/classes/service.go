package classes

//go:generate mockgen -destination=mock/mock_service.go -package=mockclasses -source=service.go

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/KirkDiggler/nexus-classes/internal/domain/classes"
	"github.com/KirkDiggler/nexus-classes/internal/domain/world"
	apperr "github.com/KirkDiggler/nexus-classes/internal/errors"
	"github.com/KirkDiggler/nexus-classes/internal/registry"
	"github.com/KirkDiggler/nexus-classes/internal/uuid"
)

// Persister receives every registry mutation made through the service.
// Saves are fire-and-forget; failures are the persister's to log.
type Persister interface {
	SaveParticipant(state registry.ParticipantState)
	SaveEnabledRegions(regions []world.RegionID)
}

// ItemGranter hands out marked class items
type ItemGranter interface {
	Grant(p *world.Participant, class classes.Class) error
}

// Service defines the class command surface
type Service interface {
	// AssignClass sets a participant's class by name
	AssignClass(ctx context.Context, participantID, className string) (*registry.ParticipantState, error)

	// QueryClass returns a participant's class
	QueryClass(ctx context.Context, participantID string) (classes.Class, error)

	// SetRegionEnabled turns class effects on or off in a region
	SetRegionEnabled(ctx context.Context, regionID string, enabled bool) error

	// QueryRegionEnabled reports whether class effects are on in a region
	QueryRegionEnabled(ctx context.Context, regionID string) (bool, error)

	// SetPreference toggles a feedback preference of a participant
	SetPreference(ctx context.Context, participantID, key string, value bool) (*registry.ParticipantState, error)

	// GrantMarkedItemIfEligible gives the participant their class item when
	// the class has one and they do not hold it yet
	GrantMarkedItemIfEligible(ctx context.Context, participant *world.Participant) (*GrantOutput, error)
}

// GrantOutput describes the outcome of a grant request
type GrantOutput struct {
	Class   classes.Class
	Granted bool
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Registry  *registry.Registry
	Items     ItemGranter
	Persister Persister
}

type service struct {
	registry  *registry.Registry
	items     ItemGranter
	persister Persister

	// saveMu orders mutation and save as one step so the last save
	// enqueued always matches the registry
	saveMu sync.Mutex
}

// NewService creates a new class service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("config cannot be nil")
	}
	if cfg.Registry == nil {
		panic("registry is required")
	}
	if cfg.Items == nil {
		panic("item granter is required")
	}
	if cfg.Persister == nil {
		panic("persister is required")
	}

	return &service{
		registry:  cfg.Registry,
		items:     cfg.Items,
		persister: cfg.Persister,
	}
}

// AssignClass sets a participant's class. Unknown names leave the registry untouched.
func (s *service) AssignClass(ctx context.Context, participantID, className string) (*registry.ParticipantState, error) {
	id, err := normalizeID("participant", participantID)
	if err != nil {
		return nil, err
	}

	class, err := classes.Parse(className)
	if err != nil {
		return nil, err
	}

	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	state, err := s.registry.SetClass(id, class)
	if err != nil {
		return nil, err
	}

	s.persister.SaveParticipant(state)
	log.Printf("ClassService: Assigned %s to %s", class, id)
	return &state, nil
}

// QueryClass returns the participant's class, Unassigned for new participants
func (s *service) QueryClass(ctx context.Context, participantID string) (classes.Class, error) {
	id, err := normalizeID("participant", participantID)
	if err != nil {
		return classes.Unassigned, err
	}
	return s.registry.ClassOf(id), nil
}

// SetRegionEnabled updates the region flag and saves the enabled set
func (s *service) SetRegionEnabled(ctx context.Context, regionID string, enabled bool) error {
	id, err := normalizeID("region", regionID)
	if err != nil {
		return err
	}

	s.saveMu.Lock()
	s.registry.SetRegionEnabled(world.RegionID(id), enabled)
	s.persister.SaveEnabledRegions(s.registry.EnabledRegions())
	s.saveMu.Unlock()

	log.Printf("ClassService: Region %s enabled=%t", id, enabled)
	return nil
}

// QueryRegionEnabled reports the region flag; unknown regions are disabled
func (s *service) QueryRegionEnabled(ctx context.Context, regionID string) (bool, error) {
	id, err := normalizeID("region", regionID)
	if err != nil {
		return false, err
	}
	return s.registry.IsRegionEnabled(world.RegionID(id)), nil
}

// SetPreference toggles perk_feedback or debug_feedback
func (s *service) SetPreference(ctx context.Context, participantID, key string, value bool) (*registry.ParticipantState, error) {
	id, err := normalizeID("participant", participantID)
	if err != nil {
		return nil, err
	}

	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	state, err := s.registry.SetPreference(id, strings.ToLower(strings.TrimSpace(key)), value)
	if err != nil {
		return nil, err
	}

	s.persister.SaveParticipant(state)
	return &state, nil
}

// GrantMarkedItemIfEligible grants the class item of the participant's
// current class. Classes without an item report Granted=false and no error.
func (s *service) GrantMarkedItemIfEligible(ctx context.Context, participant *world.Participant) (*GrantOutput, error) {
	if participant == nil {
		return nil, apperr.InvalidArgument("participant is required")
	}

	id, err := normalizeID("participant", participant.ID)
	if err != nil {
		return nil, err
	}

	class := s.registry.ClassOf(id)
	out := &GrantOutput{Class: class}
	if classes.MarkedItem(class) == nil {
		return out, nil
	}

	if err := s.items.Grant(participant, class); err != nil {
		return out, err
	}

	out.Granted = true
	return out, nil
}

func normalizeID(kind, raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", apperr.InvalidArgumentf("%s ID is required", kind)
	}

	id, err := uuid.Normalize(trimmed)
	if err != nil {
		return "", apperr.WrapWithCode(err, apperr.CodeInvalidArgument, kind+" ID must be a UUID").
			WithMeta(kind+"_id", raw)
	}
	return id, nil
}
