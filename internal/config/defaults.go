package config

import "time"

const (
	defaultStateKey    = "rgb-picker"
	defaultStep        = 1
	defaultBigStep     = 16
	defaultSliderWidth = 32
	defaultFeedback    = 900 * time.Millisecond
)

// GetDefaultConfig returns the configuration used when no file overrides it.
func GetDefaultConfig() RgbctlConfig {
	fallback := true
	return RgbctlConfig{
		State: StateConfig{
			Key: defaultStateKey,
		},
		Clipboard: ClipboardConfig{
			OSC52Fallback: &fallback,
			Feedback:      defaultFeedback,
		},
		UI: UIConfig{
			Step:        defaultStep,
			BigStep:     defaultBigStep,
			SliderWidth: defaultSliderWidth,
		},
	}
}
