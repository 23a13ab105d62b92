package shell

import (
	"testing"

	"MedSyncAI/internal/models"
	"MedSyncAI/internal/routes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildActiveFromPath(t *testing.T) {
	layout := Build("/sleep", nil)

	active, ok := layout.Active()
	require.True(t, ok)
	assert.Equal(t, "Sleep", active.Label)

	count := 0
	for _, link := range layout.Nav {
		if link.Active {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, "/sleep", layout.SignOutFrom)
	assert.Nil(t, layout.Profile)
}

func TestBuildNoActiveForUnknownPath(t *testing.T) {
	_, ok := Build("/sleep/", nil).Active()
	assert.False(t, ok)
}

func TestBuildProfileCard(t *testing.T) {
	layout := Build("/dashboard", &models.Profile{Email: "jane@example.com"})
	require.NotNil(t, layout.Profile)
	assert.Equal(t, "User", layout.Profile.Name)
	assert.Equal(t, "jane@example.com", layout.Profile.Email)

	layout = Build("/dashboard", &models.Profile{FullName: "Jane Doe"})
	assert.Equal(t, "Jane Doe", layout.Profile.Name)
}

func TestNavItemsAreGuardedRoutes(t *testing.T) {
	table := routes.Default()
	require.Len(t, NavItems, 13)
	for _, item := range NavItems {
		e := table.Resolve(item.Path)
		assert.Equal(t, item.Path, e.Path, "nav item %q has no route", item.Label)
		assert.True(t, e.Guarded, "nav item %q should be guarded", item.Label)
	}
}
