// internal/state/preferences.go
package state

import (
	"github.com/crownshop/storefront/internal/localstore"
	"github.com/crownshop/storefront/internal/models"
)

// Preferences persists the small set of simple string flags: theme and
// location-permission state.
type Preferences struct {
	store *localstore.Store
}

func NewPreferences(store *localstore.Store) *Preferences {
	return &Preferences{store: store}
}

func (p *Preferences) Theme() models.Theme {
	var theme models.Theme
	if p.store.Read(KeyTheme, &theme) && (theme == models.ThemeLight || theme == models.ThemeDark) {
		return theme
	}
	return models.ThemeDark
}

func (p *Preferences) SetTheme(theme models.Theme) {
	p.store.Write(KeyTheme, theme)
}

func (p *Preferences) LocationAsked() bool {
	return p.readFlag(KeyLocationAsked)
}

func (p *Preferences) MarkLocationAsked() {
	p.store.Write(KeyLocationAsked, "true")
}

func (p *Preferences) LocationEnabled() bool {
	return p.readFlag(KeyLocationEnabled)
}

func (p *Preferences) SetLocationEnabled(enabled bool) {
	if enabled {
		p.store.Write(KeyLocationEnabled, "true")
	} else {
		p.store.Write(KeyLocationEnabled, "false")
	}
}

func (p *Preferences) LocationName() string {
	var name string
	p.store.Read(KeyLocationName, &name)
	return name
}

func (p *Preferences) SetLocationName(name string) {
	p.store.Write(KeyLocationName, name)
}

func (p *Preferences) readFlag(key string) bool {
	var value string
	return p.store.Read(key, &value) && value == "true"
}
