package config

import (
	"time"
)

// RgbctlConfig is the top-level configuration structure for rgbctl.
type RgbctlConfig struct {
	State     StateConfig     `yaml:"state"`
	Clipboard ClipboardConfig `yaml:"clipboard"`
	UI        UIConfig        `yaml:"ui"`
	Update    UpdateConfig    `yaml:"update"`
}

// StateConfig says where the last color and theme are persisted.
type StateConfig struct {
	// Path of the YAML state document. A leading "~/" expands to the home
	// directory; empty selects <user config dir>/state.yaml.
	Path string `yaml:"path,omitempty"`
	// Key of the picker record inside the document.
	Key string `yaml:"key,omitempty"`
	// Disabled keeps state in memory only.
	Disabled bool `yaml:"disabled,omitempty"`
}

// ClipboardConfig controls "copy hex".
type ClipboardConfig struct {
	// OSC52Fallback writes an OSC52 sequence when no clipboard utility works.
	OSC52Fallback *bool `yaml:"osc52Fallback,omitempty"`
	// Feedback is how long the copy button shows its confirmation.
	Feedback time.Duration `yaml:"feedback,omitempty"`
}

// FallbackEnabled reports whether the OSC52 fallback is on (default true).
func (c ClipboardConfig) FallbackEnabled() bool {
	return c.OSC52Fallback == nil || *c.OSC52Fallback
}

// UIConfig tunes the interactive picker.
type UIConfig struct {
	// Step is the slider movement for a single key press.
	Step int `yaml:"step,omitempty"`
	// BigStep is the slider movement with shift or page keys.
	BigStep int `yaml:"bigStep,omitempty"`
	// SliderWidth is the number of cells a slider track occupies.
	SliderWidth int `yaml:"sliderWidth,omitempty"`
}

// UpdateConfig configures self-update.
type UpdateConfig struct {
	// Repository is the GitHub "owner/name" slug releases are fetched from.
	Repository string `yaml:"repository,omitempty"`
}
