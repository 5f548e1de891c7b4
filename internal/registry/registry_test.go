package registry_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/KirkDiggler/nexus-classes/internal/domain/classes"
	"github.com/KirkDiggler/nexus-classes/internal/domain/world"
	apperr "github.com/KirkDiggler/nexus-classes/internal/errors"
	"github.com/KirkDiggler/nexus-classes/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreate_Defaults(t *testing.T) {
	reg := registry.New()

	_, known := reg.Lookup("p-1")
	assert.False(t, known)

	state := reg.GetOrCreate("p-1")
	assert.Equal(t, "p-1", state.ID)
	assert.Equal(t, classes.Unassigned, state.Class)
	assert.True(t, state.Preferences.ShowPerkFeedback)
	assert.False(t, state.Preferences.ShowDebugFeedback)

	_, known = reg.Lookup("p-1")
	assert.True(t, known)
}

func TestSetClass(t *testing.T) {
	reg := registry.New()

	state, err := reg.SetClass("p-1", classes.Miner)
	require.NoError(t, err)
	assert.Equal(t, classes.Miner, state.Class)
	assert.Equal(t, classes.Miner, reg.ClassOf("p-1"))

	_, err = reg.SetClass("p-1", classes.Class("Wizard"))
	assert.True(t, apperr.IsInvalidClass(err))
	assert.Equal(t, classes.Miner, reg.ClassOf("p-1"), "invalid class must not mutate")
}

func TestSetPreference(t *testing.T) {
	reg := registry.New()

	state, err := reg.SetPreference("p-1", registry.PreferencePerkFeedback, false)
	require.NoError(t, err)
	assert.False(t, state.Preferences.ShowPerkFeedback)

	state, err = reg.SetPreference("p-1", registry.PreferenceDebugFeedback, true)
	require.NoError(t, err)
	assert.True(t, state.Preferences.ShowDebugFeedback)
	assert.False(t, state.Preferences.ShowPerkFeedback)

	_, err = reg.SetPreference("p-1", "volume", true)
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestRegions(t *testing.T) {
	reg := registry.New()

	assert.False(t, reg.IsRegionEnabled("overworld"))

	reg.SetRegionEnabled("overworld", true)
	reg.SetRegionEnabled("overworld", true)
	reg.SetRegionEnabled("nether", true)
	assert.True(t, reg.IsRegionEnabled("overworld"))
	assert.Equal(t, []world.RegionID{"nether", "overworld"}, reg.EnabledRegions())

	reg.SetRegionEnabled("nether", false)
	assert.False(t, reg.IsRegionEnabled("nether"))
	assert.Equal(t, []world.RegionID{"overworld"}, reg.EnabledRegions())
}

func TestRestore(t *testing.T) {
	reg := registry.New()
	reg.GetOrCreate("stale")
	reg.SetRegionEnabled("stale-region", true)

	reg.Restore([]registry.ParticipantState{
		{ID: "b", Class: classes.Artist, Preferences: registry.Preferences{ShowDebugFeedback: true}},
		{ID: "a", Class: classes.Builder, Preferences: registry.DefaultPreferences()},
	}, []world.RegionID{"overworld"})

	participants := reg.Participants()
	require.Len(t, participants, 2)
	assert.Equal(t, "a", participants[0].ID)
	assert.Equal(t, classes.Artist, participants[1].Class)
	assert.False(t, participants[1].Preferences.ShowPerkFeedback)
	assert.Equal(t, []world.RegionID{"overworld"}, reg.EnabledRegions())
}

func TestConcurrentMutation(t *testing.T) {
	reg := registry.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("p-%d", i%5)
			_, _ = reg.SetClass(id, classes.Warrior)
			reg.SetRegionEnabled(world.RegionID(fmt.Sprintf("r-%d", i%3)), true)
			_ = reg.IsRegionEnabled("r-0")
			_ = reg.GetOrCreate(id)
		}(i)
	}
	wg.Wait()

	assert.Len(t, reg.Participants(), 5)
	assert.Len(t, reg.EnabledRegions(), 3)
}
