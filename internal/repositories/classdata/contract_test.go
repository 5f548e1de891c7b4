package classdata_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/nexus-classes/internal/repositories/classdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runRepositoryContract exercises behavior every Repository must share
func runRepositoryContract(t *testing.T, repo classdata.Repository) {
	ctx := context.Background()

	t.Run("empty repository", func(t *testing.T) {
		participants, err := repo.ListParticipants(ctx)
		require.NoError(t, err)
		assert.Empty(t, participants)

		regions, err := repo.ListEnabledRegions(ctx)
		require.NoError(t, err)
		assert.Empty(t, regions)
	})

	t.Run("participant round trip", func(t *testing.T) {
		a := &classdata.ParticipantRecord{ID: "6f1c7d1e-0a1b-4c2d-8e3f-000000000001", Class: "Builder", ShowPerkFeedback: true}
		b := &classdata.ParticipantRecord{ID: "6f1c7d1e-0a1b-4c2d-8e3f-000000000002", Class: "Artist", ShowDebugFeedback: true}
		require.NoError(t, repo.SaveParticipant(ctx, b))
		require.NoError(t, repo.SaveParticipant(ctx, a))

		// overwrite keeps one record
		a.Class = "Miner"
		require.NoError(t, repo.SaveParticipant(ctx, a))

		participants, err := repo.ListParticipants(ctx)
		require.NoError(t, err)
		require.Len(t, participants, 2)
		assert.Equal(t, *a, *participants[0])
		assert.Equal(t, *b, *participants[1])
	})

	t.Run("invalid participant", func(t *testing.T) {
		assert.Error(t, repo.SaveParticipant(ctx, nil))
		assert.Error(t, repo.SaveParticipant(ctx, &classdata.ParticipantRecord{}))
	})

	t.Run("enabled regions are replaced", func(t *testing.T) {
		require.NoError(t, repo.SaveEnabledRegions(ctx, []string{"r-2", "r-1"}))
		regions, err := repo.ListEnabledRegions(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"r-1", "r-2"}, regions)

		require.NoError(t, repo.SaveEnabledRegions(ctx, []string{"r-3"}))
		regions, err = repo.ListEnabledRegions(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"r-3"}, regions)

		require.NoError(t, repo.SaveEnabledRegions(ctx, nil))
		regions, err = repo.ListEnabledRegions(ctx)
		require.NoError(t, err)
		assert.Empty(t, regions)
	})
}

func TestInMemoryRepository(t *testing.T) {
	runRepositoryContract(t, classdata.NewInMemoryRepository())
}

func TestSQLiteRepository(t *testing.T) {
	repo, err := classdata.OpenSQLite(t.TempDir() + "/nexus.db")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	runRepositoryContract(t, repo)
}

func TestSQLiteRepository_Reopen(t *testing.T) {
	ctx := context.Background()
	path := t.TempDir() + "/data/nexus.db"

	repo, err := classdata.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, repo.SaveParticipant(ctx, &classdata.ParticipantRecord{ID: "p-1", Class: "Warrior", ShowPerkFeedback: true}))
	require.NoError(t, repo.SaveEnabledRegions(ctx, []string{"overworld"}))
	require.NoError(t, repo.Close())

	reopened, err := classdata.OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	participants, err := reopened.ListParticipants(ctx)
	require.NoError(t, err)
	require.Len(t, participants, 1)
	assert.Equal(t, "Warrior", participants[0].Class)
	assert.True(t, participants[0].ShowPerkFeedback)

	regions, err := reopened.ListEnabledRegions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"overworld"}, regions)
}
