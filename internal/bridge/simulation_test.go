package bridge_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/KirkDiggler/nexus-classes/internal/bridge"
	"github.com/KirkDiggler/nexus-classes/internal/config"
	"github.com/KirkDiggler/nexus-classes/internal/domain/classes"
	"github.com/KirkDiggler/nexus-classes/internal/domain/world"
	"github.com/KirkDiggler/nexus-classes/internal/events"
	"github.com/KirkDiggler/nexus-classes/internal/markeditems"
	"github.com/KirkDiggler/nexus-classes/internal/registry"
	"github.com/KirkDiggler/nexus-classes/internal/rules"
	"github.com/KirkDiggler/nexus-classes/internal/scheduler"
	classservice "github.com/KirkDiggler/nexus-classes/internal/services/classes"
	mockclasses "github.com/KirkDiggler/nexus-classes/internal/services/classes/mock"
	"github.com/KirkDiggler/nexus-classes/internal/testutils"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// newTestSimulation wires a simulation over a fresh registry with RegionA enabled
func newTestSimulation(t *testing.T) (*bridge.Simulation, *registry.Registry) {
	ctrl := gomock.NewController(t)
	persister := mockclasses.NewMockPersister(ctrl)
	persister.EXPECT().SaveParticipant(gomock.Any()).AnyTimes()
	persister.EXPECT().SaveEnabledRegions(gomock.Any()).AnyTimes()

	reg := registry.New()
	reg.SetRegionEnabled(testutils.RegionA, true)

	recorder := world.NewRecorder()
	items := markeditems.NewManager(reg)
	tuning := config.DefaultTuning()

	sim := bridge.NewSimulation(&bridge.SimulationConfig{
		Engine: rules.NewEngine(&rules.EngineConfig{
			Registry: reg,
			Items:    items,
			Host:     recorder,
			Tuning:   tuning,
		}),
		Scheduler: scheduler.New(&scheduler.Config{
			Registry: reg,
			Host:     recorder,
			Tuning:   tuning,
		}),
		Recorder: recorder,
		Commands: classservice.NewService(&classservice.ServiceConfig{
			Registry:  reg,
			Items:     items,
			Persister: persister,
		}),
		Regions: reg,
	})
	return sim, reg
}

type SimulationTestSuite struct {
	suite.Suite
	sim      *bridge.Simulation
	registry *registry.Registry
	ctx      context.Context
	cancel   context.CancelFunc
}

func (s *SimulationTestSuite) SetupTest() {
	s.sim, s.registry = newTestSimulation(s.T())
	s.ctx, s.cancel = context.WithCancel(context.Background())
	go func() { _ = s.sim.Run(s.ctx) }()
}

func (s *SimulationTestSuite) TearDownTest() {
	s.cancel()
}

func TestSimulationSuite(t *testing.T) {
	suite.Run(t, new(SimulationTestSuite))
}

func (s *SimulationTestSuite) assign(id string, class classes.Class) *world.Participant {
	_, err := s.registry.SetClass(id, class)
	s.Require().NoError(err)
	return testutils.CreateTestParticipant(id, testutils.RegionA)
}

func (s *SimulationTestSuite) eventMsg(seq int64, event events.Event) *bridge.EventMsg {
	body, err := json.Marshal(event)
	s.Require().NoError(err)
	return &bridge.EventMsg{Type: bridge.TypeEvent, Seq: seq, EventType: event.GetType(), Event: body}
}

func (s *SimulationTestSuite) TestHandleEvent_BuilderFall() {
	builder := s.assign(testutils.ParticipantA, classes.Builder)
	event := &events.DamageEvent{
		Target: &world.Entity{ID: builder.ID, Kind: world.EntityPlayer, Location: builder.Location, Participant: builder},
		Cause:  world.DamageFall,
		Damage: 6,
	}
	event.Type = events.EventTypeDamage

	out, err := s.sim.HandleEvent(s.ctx, s.eventMsg(7, event))
	s.Require().NoError(err)

	s.Equal(int64(7), out.Seq)
	s.True(out.Cancelled)
	s.Contains(out.Fired, rules.BuilderNoFallDamage)

	var decoded events.DamageEvent
	s.Require().NoError(json.Unmarshal(out.Event, &decoded))
	s.Zero(decoded.Damage)
	s.True(decoded.Cancelled)
}

func (s *SimulationTestSuite) TestHandleEvent_UnmatchedPassesThrough() {
	miner := s.assign(testutils.ParticipantA, classes.Miner)
	event := &events.DamageEvent{
		Target: &world.Entity{ID: miner.ID, Kind: world.EntityPlayer, Location: miner.Location, Participant: miner},
		Cause:  world.DamageFall,
		Damage: 6,
	}
	event.Type = events.EventTypeDamage

	out, err := s.sim.HandleEvent(s.ctx, s.eventMsg(1, event))
	s.Require().NoError(err)

	s.False(out.Cancelled)
	s.Empty(out.Fired)
	s.Empty(out.Actions)
}

func (s *SimulationTestSuite) TestHandleEvent_PreCancelledEventStillGuarded() {
	warrior := s.assign(testutils.ParticipantA, classes.Warrior)
	warrior.Inventory.Slots[warrior.Inventory.HeldSlot] = markeditems.NewItem(classes.Artist)
	event := &events.InteractEvent{
		Actor:  warrior,
		Action: world.RightClickAir,
		Hand:   world.HandMain,
	}
	event.Type = events.EventTypeInteract
	event.Cancelled = true

	out, err := s.sim.HandleEvent(s.ctx, s.eventMsg(3, event))
	s.Require().NoError(err)

	s.True(out.Cancelled)
	s.Equal([]string{rules.ArtistItemMisuse}, out.Fired)

	var decoded events.InteractEvent
	s.Require().NoError(json.Unmarshal(out.Event, &decoded))
	s.Nil(decoded.Actor.Inventory.Held(), "the whole stack is destroyed")
}

func (s *SimulationTestSuite) TestHandleEvent_UnknownType() {
	_, err := s.sim.HandleEvent(s.ctx, &bridge.EventMsg{EventType: "teleport"})
	s.Error(err)
}

func (s *SimulationTestSuite) TestHandleTick_WaterAllergy() {
	artist := s.assign(testutils.ParticipantA, classes.Artist)
	artist.Environment.InWater = true

	out, err := s.sim.HandleTick(s.ctx, &bridge.TickMsg{Tick: 0, Participants: []*world.Participant{artist}})
	s.Require().NoError(err)

	s.Equal([]scheduler.Firing{{EffectID: scheduler.ArtistWaterAllergy, ParticipantID: artist.ID}}, out.Fired)
	s.Require().Len(out.Actions, 1)
	s.Equal(world.ActionDamage, out.Actions[0].Type)
	s.Equal(config.DefaultTuning().WaterDamage, out.Actions[0].Amount)
}

func (s *SimulationTestSuite) TestCommands_ChooseAndGet() {
	out, err := s.sim.HandleCommand(s.ctx, &bridge.CommandMsg{
		Seq:           3,
		Name:          bridge.CommandChoose,
		ParticipantID: testutils.ParticipantA,
		Args:          map[string]string{"class": "warrior"},
	})
	s.Require().NoError(err)
	s.True(out.OK)
	s.Equal("Your class is now Warrior", out.Message)
	s.Equal(classes.Warrior, s.registry.ClassOf(testutils.ParticipantA))

	out, err = s.sim.HandleCommand(s.ctx, &bridge.CommandMsg{
		Name:          bridge.CommandGet,
		ParticipantID: testutils.ParticipantA,
	})
	s.Require().NoError(err)
	s.Equal("Your class is Warrior", out.Message)
}

func (s *SimulationTestSuite) TestCommands_SetNotifiesTarget() {
	out, err := s.sim.HandleCommand(s.ctx, &bridge.CommandMsg{
		Name:          bridge.CommandSet,
		ParticipantID: testutils.ParticipantA,
		Args:          map[string]string{"class": "Miner", "target": testutils.ParticipantB},
	})
	s.Require().NoError(err)
	s.True(out.OK)
	s.Require().Len(out.Actions, 1)
	s.Equal(world.ActionSendMessage, out.Actions[0].Type)
	s.Equal(testutils.ParticipantB, out.Actions[0].Target)
	s.Contains(out.Actions[0].Message, "Your class has been set to Miner")
}

func (s *SimulationTestSuite) TestCommands_InvalidClass() {
	out, err := s.sim.HandleCommand(s.ctx, &bridge.CommandMsg{
		Name:          bridge.CommandChoose,
		ParticipantID: testutils.ParticipantA,
		Args:          map[string]string{"class": "wizard"},
	})
	s.Require().NoError(err)
	s.False(out.OK)
	s.Equal("invalid_class", out.Code)
	s.Equal(classes.Unassigned, s.registry.ClassOf(testutils.ParticipantA))
}

func (s *SimulationTestSuite) TestCommands_Item() {
	builder := s.assign(testutils.ParticipantA, classes.Builder)
	msg := &bridge.CommandMsg{
		Name:          bridge.CommandItem,
		ParticipantID: builder.ID,
		Participant:   builder,
	}

	out, err := s.sim.HandleCommand(s.ctx, msg)
	s.Require().NoError(err)
	s.True(out.OK)
	s.Require().NotNil(out.Participant)
	s.True(markeditems.Holds(out.Participant.Inventory, classes.Builder))

	out, err = s.sim.HandleCommand(s.ctx, msg)
	s.Require().NoError(err)
	s.True(out.OK)
	s.Equal("You already have your class item", out.Message)
	s.Nil(out.Participant)
}

func (s *SimulationTestSuite) TestCommands_World() {
	p := testutils.CreateTestParticipant(testutils.ParticipantA, testutils.RegionB)

	out, err := s.sim.HandleCommand(s.ctx, &bridge.CommandMsg{
		Name:          bridge.CommandWorld,
		ParticipantID: p.ID,
		Participant:   p,
	})
	s.Require().NoError(err)
	s.Equal("Class effects are disabled in this world", out.Message)

	out, err = s.sim.HandleCommand(s.ctx, &bridge.CommandMsg{
		Name:          bridge.CommandWorld,
		ParticipantID: p.ID,
		Participant:   p,
		Args:          map[string]string{"enabled": "yes"},
	})
	s.Require().NoError(err)
	s.True(out.OK)
	s.True(s.registry.IsRegionEnabled(testutils.RegionB))
}

func (s *SimulationTestSuite) TestCommands_Preferences() {
	out, err := s.sim.HandleCommand(s.ctx, &bridge.CommandMsg{
		Name:          bridge.CommandPerks,
		ParticipantID: testutils.ParticipantA,
		Args:          map[string]string{"enabled": "off"},
	})
	s.Require().NoError(err)
	s.Equal("You will no longer receive perk messages", out.Message)
	s.False(s.registry.GetOrCreate(testutils.ParticipantA).Preferences.ShowPerkFeedback)

	out, err = s.sim.HandleCommand(s.ctx, &bridge.CommandMsg{
		Name:          bridge.CommandDebug,
		ParticipantID: testutils.ParticipantA,
		Args:          map[string]string{"enabled": "maybe"},
	})
	s.Require().NoError(err)
	s.False(out.OK)
	s.Equal("invalid_argument", out.Code)
}

func (s *SimulationTestSuite) TestCommands_Unknown() {
	out, err := s.sim.HandleCommand(s.ctx, &bridge.CommandMsg{Name: "dance", ParticipantID: testutils.ParticipantA})
	s.Require().NoError(err)
	s.False(out.OK)
}

func (s *SimulationTestSuite) TestWelcome() {
	welcome := s.sim.Welcome()

	s.Equal(bridge.ProtocolVersion, welcome.ProtocolVersion)
	s.Equal([]string{"Unassigned", "Builder", "Miner", "Warrior", "Artist"}, welcome.Classes)
	s.Equal(rules.IDs(), welcome.Rules)
	s.Equal(scheduler.IDs(), welcome.Effects)
	s.Equal([]string{testutils.RegionA}, welcome.EnabledRegions)
}

func (s *SimulationTestSuite) TestStoppedSimulationRejects() {
	s.cancel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.sim.HandleTick(ctx, &bridge.TickMsg{Tick: 1})
	s.ErrorIs(err, context.Canceled)
}

func (s *SimulationTestSuite) TestParseToggle() {
	on, err := bridge.ParseToggle(" Enabled ")
	s.NoError(err)
	s.True(on)

	off, err := bridge.ParseToggle("0")
	s.NoError(err)
	s.False(off)

	_, err = bridge.ParseToggle("")
	s.Error(err)
}
