package classes_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/nexus-classes/internal/domain/classes"
	"github.com/KirkDiggler/nexus-classes/internal/domain/world"
	apperr "github.com/KirkDiggler/nexus-classes/internal/errors"
	"github.com/KirkDiggler/nexus-classes/internal/markeditems"
	"github.com/KirkDiggler/nexus-classes/internal/registry"
	classservice "github.com/KirkDiggler/nexus-classes/internal/services/classes"
	mockclasses "github.com/KirkDiggler/nexus-classes/internal/services/classes/mock"
	"github.com/KirkDiggler/nexus-classes/internal/services/persistence"
	"github.com/KirkDiggler/nexus-classes/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var _ classservice.Persister = (*persistence.AsyncWriter)(nil)

type ServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	persister *mockclasses.MockPersister
	registry  *registry.Registry
	service   classservice.Service
	ctx       context.Context
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.persister = mockclasses.NewMockPersister(s.ctrl)
	s.registry = registry.New()
	s.ctx = context.Background()
	s.service = classservice.NewService(&classservice.ServiceConfig{
		Registry:  s.registry,
		Items:     markeditems.NewManager(s.registry),
		Persister: s.persister,
	})
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) TestAssignClass() {
	s.persister.EXPECT().SaveParticipant(registry.ParticipantState{
		ID:          testutils.ParticipantA,
		Class:       classes.Miner,
		Preferences: registry.DefaultPreferences(),
	})

	state, err := s.service.AssignClass(s.ctx, testutils.ParticipantA, "miner")
	s.Require().NoError(err)
	s.Equal(classes.Miner, state.Class)

	class, err := s.service.QueryClass(s.ctx, testutils.ParticipantA)
	s.NoError(err)
	s.Equal(classes.Miner, class)
}

func (s *ServiceTestSuite) TestAssignClass_UppercaseIDIsNormalized() {
	s.persister.EXPECT().SaveParticipant(gomock.Any())

	state, err := s.service.AssignClass(s.ctx, strings.ToUpper(testutils.ParticipantA), "Warrior")
	s.Require().NoError(err)
	s.Equal(testutils.ParticipantA, state.ID)
	s.Equal(classes.Warrior, s.registry.ClassOf(testutils.ParticipantA))
}

func (s *ServiceTestSuite) TestAssignClass_InvalidClassDoesNotMutate() {
	s.persister.EXPECT().SaveParticipant(gomock.Any())
	_, err := s.service.AssignClass(s.ctx, testutils.ParticipantA, "Builder")
	s.Require().NoError(err)

	_, err = s.service.AssignClass(s.ctx, testutils.ParticipantA, "Wizard")
	s.True(apperr.IsInvalidClass(err))
	s.Equal(classes.Builder, s.registry.ClassOf(testutils.ParticipantA))
}

func (s *ServiceTestSuite) TestInvalidIDs() {
	_, err := s.service.AssignClass(s.ctx, "", "Builder")
	s.True(apperr.IsInvalidArgument(err))

	_, err = s.service.QueryClass(s.ctx, "steve")
	s.True(apperr.IsInvalidArgument(err))

	s.True(apperr.IsInvalidArgument(s.service.SetRegionEnabled(s.ctx, "  ", true)))

	_, err = s.service.QueryRegionEnabled(s.ctx, "world_nether")
	s.True(apperr.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestQueryClass_UnknownParticipantIsUnassigned() {
	class, err := s.service.QueryClass(s.ctx, testutils.ParticipantB)
	s.NoError(err)
	s.Equal(classes.Unassigned, class)
}

func (s *ServiceTestSuite) TestSetRegionEnabled() {
	gomock.InOrder(
		s.persister.EXPECT().SaveEnabledRegions([]world.RegionID{testutils.RegionA}),
		s.persister.EXPECT().SaveEnabledRegions([]world.RegionID{testutils.RegionA}),
		s.persister.EXPECT().SaveEnabledRegions([]world.RegionID{}),
	)

	s.NoError(s.service.SetRegionEnabled(s.ctx, testutils.RegionA, true))
	s.NoError(s.service.SetRegionEnabled(s.ctx, testutils.RegionA, true))

	enabled, err := s.service.QueryRegionEnabled(s.ctx, testutils.RegionA)
	s.NoError(err)
	s.True(enabled)

	s.NoError(s.service.SetRegionEnabled(s.ctx, testutils.RegionA, false))
	enabled, err = s.service.QueryRegionEnabled(s.ctx, testutils.RegionA)
	s.NoError(err)
	s.False(enabled)
}

func (s *ServiceTestSuite) TestSetPreference() {
	s.persister.EXPECT().SaveParticipant(gomock.Any())

	state, err := s.service.SetPreference(s.ctx, testutils.ParticipantA, "Debug_Feedback", true)
	s.Require().NoError(err)
	s.True(state.Preferences.ShowDebugFeedback)
	s.True(state.Preferences.ShowPerkFeedback)

	_, err = s.service.SetPreference(s.ctx, testutils.ParticipantA, "volume", true)
	s.True(apperr.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestGrantMarkedItem() {
	s.persister.EXPECT().SaveParticipant(gomock.Any())
	_, err := s.service.AssignClass(s.ctx, testutils.ParticipantA, "Builder")
	s.Require().NoError(err)

	participant := testutils.CreateTestParticipant(testutils.ParticipantA, testutils.RegionA)

	out, err := s.service.GrantMarkedItemIfEligible(s.ctx, participant)
	s.Require().NoError(err)
	s.True(out.Granted)
	s.True(markeditems.Holds(participant.Inventory, classes.Builder))

	out, err = s.service.GrantMarkedItemIfEligible(s.ctx, participant)
	s.True(apperr.IsAlreadyHeld(err))
	s.False(out.Granted)
	s.Equal(1, participant.Inventory.Count(func(item *world.ItemStack) bool {
		return item.Material == world.MaterialStick
	}))
}

func (s *ServiceTestSuite) TestGrantMarkedItem_ClassWithoutItem() {
	s.persister.EXPECT().SaveParticipant(gomock.Any())
	_, err := s.service.AssignClass(s.ctx, testutils.ParticipantA, "Miner")
	s.Require().NoError(err)

	participant := testutils.CreateTestParticipant(testutils.ParticipantA, testutils.RegionA)

	out, err := s.service.GrantMarkedItemIfEligible(s.ctx, participant)
	s.NoError(err)
	s.False(out.Granted)
	s.Equal(classes.Miner, out.Class)
}

func (s *ServiceTestSuite) TestGrantMarkedItem_UsesGranter() {
	granter := mockclasses.NewMockItemGranter(s.ctrl)
	service := classservice.NewService(&classservice.ServiceConfig{
		Registry:  s.registry,
		Items:     granter,
		Persister: s.persister,
	})

	s.persister.EXPECT().SaveParticipant(gomock.Any())
	_, err := service.AssignClass(s.ctx, testutils.ParticipantA, "Artist")
	s.Require().NoError(err)

	participant := testutils.CreateTestParticipant(testutils.ParticipantA, testutils.RegionA)
	granter.EXPECT().Grant(participant, classes.Artist).Return(apperr.Unavailablef("inventory full"))

	out, err := service.GrantMarkedItemIfEligible(s.ctx, participant)
	s.Error(err)
	s.False(out.Granted)
}

func (s *ServiceTestSuite) TestGrantMarkedItem_NilParticipant() {
	_, err := s.service.GrantMarkedItemIfEligible(s.ctx, nil)
	s.True(apperr.IsInvalidArgument(err))
}

// blockingPersister holds the first region save until release is closed
type blockingPersister struct {
	mu      sync.Mutex
	saved   [][]world.RegionID
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (p *blockingPersister) SaveParticipant(registry.ParticipantState) {}

func (p *blockingPersister) SaveEnabledRegions(regions []world.RegionID) {
	first := false
	p.once.Do(func() { first = true })
	if first {
		close(p.entered)
		<-p.release
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.saved = append(p.saved, regions)
}

func (p *blockingPersister) last() []world.RegionID {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.saved[len(p.saved)-1]
}

func TestSetRegionEnabled_ConcurrentTogglesPersistLatestSet(t *testing.T) {
	reg := registry.New()
	persister := &blockingPersister{entered: make(chan struct{}), release: make(chan struct{})}
	service := classservice.NewService(&classservice.ServiceConfig{
		Registry:  reg,
		Items:     markeditems.NewManager(reg),
		Persister: persister,
	})
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		assert.NoError(t, service.SetRegionEnabled(ctx, testutils.RegionA, true))
	}()
	<-persister.entered

	secondDone := make(chan struct{})
	go func() {
		defer wg.Done()
		defer close(secondDone)
		assert.NoError(t, service.SetRegionEnabled(ctx, testutils.RegionB, true))
	}()

	select {
	case <-secondDone:
		t.Fatal("second toggle finished while the first save was still pending")
	case <-time.After(50 * time.Millisecond):
	}
	assert.False(t, reg.IsRegionEnabled(testutils.RegionB))

	close(persister.release)
	wg.Wait()

	require.Len(t, persister.saved, 2)
	assert.Equal(t, reg.EnabledRegions(), persister.last())
	assert.Equal(t, []world.RegionID{testutils.RegionA, testutils.RegionB}, persister.last())
}
