package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"rgbctl/pkg/logging"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/rgbctl"
	projectConfigDir = ".rgbctl"
	configFileName   = "config.yaml"
	stateFileName    = "state.yaml"
)

// LoadConfig loads the rgbctl configuration by layering default, user, and project settings.
func LoadConfig() (RgbctlConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// user config is optional
		logging.Warn("Config", "Could not determine user config path: %v", err)
	} else if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
		userConfig, err := loadConfigFromFile(userConfigPath)
		if err != nil {
			return RgbctlConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
		config = mergeConfigs(config, userConfig)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn("Config", "Could not determine project config path: %v", err)
	} else if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
		projectConfig, err := loadConfigFromFile(projectConfigPath)
		if err != nil {
			return RgbctlConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
		config = mergeConfigs(config, projectConfig)
	}

	return config, nil
}

// LoadConfigFromPath loads defaults overlaid with <dir>/config.yaml only.
func LoadConfigFromPath(dir string) (RgbctlConfig, error) {
	config := GetDefaultConfig()
	path := filepath.Join(dir, configFileName)
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return RgbctlConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return mergeConfigs(config, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	dir, err := GetUserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads an RgbctlConfig from a YAML file.
func loadConfigFromFile(filePath string) (RgbctlConfig, error) {
	var config RgbctlConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return RgbctlConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return RgbctlConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in
// overlay leave base untouched.
func mergeConfigs(base, overlay RgbctlConfig) RgbctlConfig {
	merged := base

	if overlay.State.Path != "" {
		merged.State.Path = overlay.State.Path
	}
	if overlay.State.Key != "" {
		merged.State.Key = overlay.State.Key
	}
	if overlay.State.Disabled {
		merged.State.Disabled = true
	}

	if overlay.Clipboard.OSC52Fallback != nil {
		v := *overlay.Clipboard.OSC52Fallback
		merged.Clipboard.OSC52Fallback = &v
	}
	if overlay.Clipboard.Feedback > 0 {
		merged.Clipboard.Feedback = overlay.Clipboard.Feedback
	}

	if overlay.UI.Step > 0 {
		merged.UI.Step = overlay.UI.Step
	}
	if overlay.UI.BigStep > 0 {
		merged.UI.BigStep = overlay.UI.BigStep
	}
	if overlay.UI.SliderWidth > 0 {
		merged.UI.SliderWidth = overlay.UI.SliderWidth
	}

	if overlay.Update.Repository != "" {
		merged.Update.Repository = overlay.Update.Repository
	}

	return merged
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

// ResolveStatePath returns the absolute location of the state document.
func (c RgbctlConfig) ResolveStatePath() (string, error) {
	path := c.State.Path
	if path == "" {
		dir, err := GetUserConfigDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine state directory: %w", err)
		}
		return filepath.Join(dir, stateFileName), nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := osUserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to expand %s: %w", path, err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}
