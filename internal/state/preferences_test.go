// internal/state/preferences_test.go
package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crownshop/storefront/internal/models"
)

func TestThemeDefaultsToDark(t *testing.T) {
	prefs := NewPreferences(newTestStore(t))
	assert.Equal(t, models.ThemeDark, prefs.Theme())
}

func TestThemeRoundTrip(t *testing.T) {
	store := newTestStore(t)
	prefs := NewPreferences(store)

	prefs.SetTheme(models.ThemeLight)
	assert.Equal(t, models.ThemeLight, prefs.Theme())

	// Survives a fresh manager over the same store.
	assert.Equal(t, models.ThemeLight, NewPreferences(store).Theme())
}

func TestLocationFlags(t *testing.T) {
	store := newTestStore(t)
	prefs := NewPreferences(store)

	assert.False(t, prefs.LocationAsked())
	assert.False(t, prefs.LocationEnabled())
	assert.Empty(t, prefs.LocationName())

	prefs.MarkLocationAsked()
	prefs.SetLocationEnabled(true)
	prefs.SetLocationName("Stockholm")

	assert.True(t, prefs.LocationAsked())
	assert.True(t, prefs.LocationEnabled())
	assert.Equal(t, "Stockholm", prefs.LocationName())

	prefs.SetLocationEnabled(false)
	assert.False(t, prefs.LocationEnabled())
}
