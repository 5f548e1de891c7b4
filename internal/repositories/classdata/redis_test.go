package classdata

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.repo = NewRedisRepository(&RedisRepoConfig{
		Client: s.mockClient,
		// sequential reads keep mock expectations ordered
		MaxParallelReads: 1,
	})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) TestSaveParticipant() {
	ctx := context.Background()
	record := &ParticipantRecord{ID: "p-1", Class: "Builder", ShowPerkFeedback: true}
	jsonData, err := json.Marshal(record)
	s.Require().NoError(err)

	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("participant:p-1", string(jsonData), 0).SetVal("OK")
	s.mock.ExpectSAdd("participants", "p-1").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.SaveParticipant(ctx, record))
}

func (s *RedisRepoTestSuite) TestSaveParticipant_Validation() {
	ctx := context.Background()

	s.Error(s.repo.SaveParticipant(ctx, nil))
	s.Error(s.repo.SaveParticipant(ctx, &ParticipantRecord{Class: "Builder"}))
}

func (s *RedisRepoTestSuite) TestListParticipants() {
	ctx := context.Background()
	builder, _ := json.Marshal(&ParticipantRecord{ID: "p-1", Class: "Builder", ShowPerkFeedback: true})

	s.mock.ExpectSMembers("participants").SetVal([]string{"p-3", "p-1", "p-2"})
	s.mock.ExpectGet("participant:p-1").SetVal(string(builder))
	s.mock.ExpectGet("participant:p-2").RedisNil()
	s.mock.ExpectGet("participant:p-3").SetVal("{not json")

	records, err := s.repo.ListParticipants(ctx)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal("p-1", records[0].ID)
	s.Equal("Builder", records[0].Class)
	s.True(records[0].ShowPerkFeedback)
}

func (s *RedisRepoTestSuite) TestListParticipants_Errors() {
	ctx := context.Background()

	s.mock.ExpectSMembers("participants").SetErr(errors.New("connection refused"))
	_, err := s.repo.ListParticipants(ctx)
	s.ErrorContains(err, "connection refused")

	s.mock.ExpectSMembers("participants").SetVal([]string{"p-1"})
	s.mock.ExpectGet("participant:p-1").SetErr(errors.New("timeout"))
	_, err = s.repo.ListParticipants(ctx)
	s.ErrorContains(err, "timeout")
}

func (s *RedisRepoTestSuite) TestSaveEnabledRegions() {
	ctx := context.Background()

	s.mock.ExpectTxPipeline()
	s.mock.ExpectDel("regions:enabled").SetVal(1)
	s.mock.ExpectSAdd("regions:enabled", "a", "b").SetVal(2)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.SaveEnabledRegions(ctx, []string{"b", "a", "b"}))
}

func (s *RedisRepoTestSuite) TestSaveEnabledRegions_Empty() {
	ctx := context.Background()

	s.mock.ExpectTxPipeline()
	s.mock.ExpectDel("regions:enabled").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.SaveEnabledRegions(ctx, nil))
}

func (s *RedisRepoTestSuite) TestListEnabledRegions() {
	ctx := context.Background()

	s.mock.ExpectSMembers("regions:enabled").SetVal([]string{"z", "a"})
	regions, err := s.repo.ListEnabledRegions(ctx)
	s.Require().NoError(err)
	s.Equal([]string{"a", "z"}, regions)

	s.mock.ExpectSMembers("regions:enabled").SetErr(errors.New("boom"))
	_, err = s.repo.ListEnabledRegions(ctx)
	s.Error(err)
}
