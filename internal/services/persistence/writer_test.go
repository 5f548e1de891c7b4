package persistence_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/nexus-classes/internal/domain/classes"
	"github.com/KirkDiggler/nexus-classes/internal/domain/world"
	"github.com/KirkDiggler/nexus-classes/internal/metrics"
	"github.com/KirkDiggler/nexus-classes/internal/registry"
	"github.com/KirkDiggler/nexus-classes/internal/repositories/classdata"
	mockclassdata "github.com/KirkDiggler/nexus-classes/internal/repositories/classdata/mock"
	"github.com/KirkDiggler/nexus-classes/internal/services/persistence"
	"github.com/KirkDiggler/nexus-classes/internal/testutils"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AsyncWriterTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	repo *mockclassdata.MockRepository
}

func (s *AsyncWriterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = mockclassdata.NewMockRepository(s.ctrl)
}

func TestAsyncWriterTestSuite(t *testing.T) {
	suite.Run(t, new(AsyncWriterTestSuite))
}

func (s *AsyncWriterTestSuite) TestSavesInOrder() {
	state := registry.ParticipantState{
		ID:          testutils.ParticipantA,
		Class:       classes.Miner,
		Preferences: registry.Preferences{ShowPerkFeedback: true},
	}

	gomock.InOrder(
		s.repo.EXPECT().SaveParticipant(gomock.Any(), &classdata.ParticipantRecord{
			ID:               testutils.ParticipantA,
			Class:            "Miner",
			ShowPerkFeedback: true,
		}).Return(nil),
		s.repo.EXPECT().SaveEnabledRegions(gomock.Any(), []string{testutils.RegionA, testutils.RegionB}).Return(nil),
	)

	writer := persistence.NewAsyncWriter(&persistence.AsyncWriterConfig{Repository: s.repo})
	writer.SaveParticipant(state)
	writer.SaveEnabledRegions([]world.RegionID{testutils.RegionA, testutils.RegionB})
	writer.Close()
}

func (s *AsyncWriterTestSuite) TestFailureIsCounted() {
	before := testutil.ToFloat64(metrics.PersistenceWrites.WithLabelValues("regions", "error"))

	s.repo.EXPECT().SaveEnabledRegions(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	writer := persistence.NewAsyncWriter(&persistence.AsyncWriterConfig{Repository: s.repo})
	writer.SaveEnabledRegions(nil)
	writer.Close()

	after := testutil.ToFloat64(metrics.PersistenceWrites.WithLabelValues("regions", "error"))
	s.Equal(before+1, after)
}

func (s *AsyncWriterTestSuite) TestWriteTimeoutAppliesToContext() {
	s.repo.EXPECT().SaveEnabledRegions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ []string) error {
			deadline, ok := ctx.Deadline()
			s.True(ok)
			s.WithinDuration(time.Now().Add(time.Second), deadline, 500*time.Millisecond)
			return nil
		})

	writer := persistence.NewAsyncWriter(&persistence.AsyncWriterConfig{
		Repository:   s.repo,
		WriteTimeout: time.Second,
	})
	writer.SaveEnabledRegions(nil)
	writer.Close()
}

func (s *AsyncWriterTestSuite) TestFullQueueDropsSave() {
	started := make(chan struct{})
	release := make(chan struct{})

	s.repo.EXPECT().SaveParticipant(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *classdata.ParticipantRecord) error {
			close(started)
			<-release
			return nil
		})
	s.repo.EXPECT().SaveParticipant(gomock.Any(), gomock.Any()).Return(nil)

	dropped := metrics.PersistenceWrites.WithLabelValues("participant", "dropped")
	before := testutil.ToFloat64(dropped)

	writer := persistence.NewAsyncWriter(&persistence.AsyncWriterConfig{Repository: s.repo, QueueSize: 1})
	state := registry.ParticipantState{ID: testutils.ParticipantA, Class: classes.Builder}

	writer.SaveParticipant(state)
	<-started
	writer.SaveParticipant(state) // queued
	writer.SaveParticipant(state) // dropped

	close(release)
	writer.Close()

	s.Equal(before+1, testutil.ToFloat64(dropped))
}

func (s *AsyncWriterTestSuite) TestSaveAfterCloseIsDropped() {
	writer := persistence.NewAsyncWriter(&persistence.AsyncWriterConfig{Repository: s.repo})
	writer.Close()

	s.NotPanics(func() {
		writer.SaveEnabledRegions([]world.RegionID{testutils.RegionA})
		writer.Close()
	})
}

func TestNewAsyncWriter_RequiresRepository(t *testing.T) {
	require.Panics(t, func() { persistence.NewAsyncWriter(&persistence.AsyncWriterConfig{}) })
	assert.Panics(t, func() { persistence.NewAsyncWriter(nil) })
}
