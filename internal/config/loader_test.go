package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a temporary config file
func createTempConfigFile(t *testing.T, dir string, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	tempFilePath := filepath.Join(dir, configFileName)
	require.NoError(t, os.WriteFile(tempFilePath, []byte(content), 0644))
	return tempFilePath
}

// isolatePaths points both config layers at tempDir and restores them afterwards.
func isolatePaths(t *testing.T, tempDir string) {
	t.Helper()
	originalGetUserConfigPath := getUserConfigPath
	originalGetProjectConfigPath := getProjectConfigPath
	originalOsUserHomeDir := osUserHomeDir
	t.Cleanup(func() {
		getUserConfigPath = originalGetUserConfigPath
		getProjectConfigPath = originalGetProjectConfigPath
		osUserHomeDir = originalOsUserHomeDir
	})

	osUserHomeDir = func() (string, error) { return tempDir, nil }
	getUserConfigPath = func() (string, error) {
		return filepath.Join(tempDir, userConfigDir, configFileName), nil
	}
	getProjectConfigPath = func() (string, error) {
		return filepath.Join(tempDir, "project", projectConfigDir, configFileName), nil
	}
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	isolatePaths(t, t.TempDir())

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, GetDefaultConfig(), loadedConfig)
	assert.Equal(t, "rgb-picker", loadedConfig.State.Key)
	assert.True(t, loadedConfig.Clipboard.FallbackEnabled())
	assert.Equal(t, 900*time.Millisecond, loadedConfig.Clipboard.Feedback)
	assert.Equal(t, 1, loadedConfig.UI.Step)
	assert.Equal(t, 16, loadedConfig.UI.BigStep)
	assert.Equal(t, 32, loadedConfig.UI.SliderWidth)
}

func TestLoadConfig_UserOverride(t *testing.T) {
	tempDir := t.TempDir()
	isolatePaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, userConfigDir), `
state:
  key: my-picker
clipboard:
  osc52Fallback: false
  feedback: 2s
ui:
  bigStep: 32
`)

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "my-picker", loadedConfig.State.Key)
	assert.False(t, loadedConfig.Clipboard.FallbackEnabled())
	assert.Equal(t, 2*time.Second, loadedConfig.Clipboard.Feedback)
	assert.Equal(t, 32, loadedConfig.UI.BigStep)
	assert.Equal(t, 1, loadedConfig.UI.Step, "unset fields keep defaults")
}

func TestLoadConfig_ProjectOverridesUser(t *testing.T) {
	tempDir := t.TempDir()
	isolatePaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, userConfigDir), "ui:\n  step: 2\n  sliderWidth: 20\n")
	createTempConfigFile(t, filepath.Join(tempDir, "project", projectConfigDir), "ui:\n  step: 5\nupdate:\n  repository: acme/rgbctl\n")

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 5, loadedConfig.UI.Step)
	assert.Equal(t, 20, loadedConfig.UI.SliderWidth)
	assert.Equal(t, "acme/rgbctl", loadedConfig.Update.Repository)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	isolatePaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, userConfigDir), "ui: [broken")

	_, err := LoadConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "error loading user config")
}

func TestLoadConfigFromPath(t *testing.T) {
	dir := t.TempDir()
	createTempConfigFile(t, dir, "state:\n  disabled: true\n")

	loadedConfig, err := LoadConfigFromPath(dir)
	require.NoError(t, err)
	assert.True(t, loadedConfig.State.Disabled)
	assert.Equal(t, "rgb-picker", loadedConfig.State.Key)

	_, err = LoadConfigFromPath(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestResolveStatePath(t *testing.T) {
	tempDir := t.TempDir()
	isolatePaths(t, tempDir)

	cfg := GetDefaultConfig()
	path, err := cfg.ResolveStatePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tempDir, userConfigDir, stateFileName), path)

	cfg.State.Path = "~/colors/state.yaml"
	path, err = cfg.ResolveStatePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tempDir, "colors", "state.yaml"), path)

	cfg.State.Path = filepath.Join(tempDir, "abs.yaml")
	path, err = cfg.ResolveStatePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tempDir, "abs.yaml"), path)
}
