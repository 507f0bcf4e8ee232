// Package settings persists user preferences across runs.
// Gameplay scores are deliberately not stored here; only input/output
// preferences and grid tuning survive a restart.
package settings

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings holds the persisted user preferences
type Settings struct {
	Muted bool `yaml:"muted"`

	// Grid overrides; zero means "use the engine default"
	GridRows int `yaml:"gridRows"`
	GridCols int `yaml:"gridCols"`
}

// DefaultSettings returns the stock preferences
func DefaultSettings() Settings {
	return Settings{}
}

const (
	settingsObject   = "settings"
	settingsProperty = "user"
)

// Manager loads and saves settings through gdata's per-user storage
// A nil gdata manager degrades to in-memory settings without errors
type Manager struct {
	store    *gdata.Manager
	settings Settings
}

// NewManager creates a settings manager and loads any saved preferences
// A load failure is not fatal; defaults are used instead
func NewManager(store *gdata.Manager) *Manager {
	m := &Manager{
		store:    store,
		settings: DefaultSettings(),
	}
	// Best effort; a corrupt or absent file just means defaults
	_ = m.Load()
	return m
}

// Load reads saved settings, keeping defaults when none exist
func (m *Manager) Load() error {
	if m.store == nil {
		return nil
	}
	if !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("settings: load: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("settings: unmarshal: %w", err)
	}
	m.settings = s
	return nil
}

// Save writes the current settings; a nil store is a silent no-op
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}

	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("settings: marshal: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	return nil
}

// Get returns a copy of the current settings
func (m *Manager) Get() Settings {
	return m.settings
}

// Set replaces the current settings in memory; call Save to persist
func (m *Manager) Set(s Settings) {
	m.settings = s
}
