package app

import (
	"fmt"

	"rgbctl/internal/clipboard"
	"rgbctl/internal/picker"
	"rgbctl/internal/state"
	"rgbctl/pkg/logging"
)

// Services holds everything built from the loaded configuration.
type Services struct {
	Store      state.Store
	Controller *picker.Controller
	Copier     *clipboard.Copier
}

// InitializeServices creates the state store, restores the picker from it
// and prepares the clipboard.
func InitializeServices(cfg *Config, opts ...picker.Option) (*Services, error) {
	if cfg.RgbctlConfig == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	rc := cfg.RgbctlConfig

	var store state.Store
	if rc.State.Disabled {
		logging.Info("Bootstrap", "State persistence disabled, keeping color in memory")
		store = state.NewMemoryStore(nil)
	} else {
		path, err := rc.ResolveStatePath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve state path: %w", err)
		}
		logging.Debug("Bootstrap", "Using state file %s (key %q)", path, rc.State.Key)
		store = state.NewFileStore(path, rc.State.Key)
	}

	if cfg.NoTUI {
		opts = append([]picker.Option{picker.WithSurface(picker.NewLogSurface("Picker"))}, opts...)
	}
	ctrl := picker.New(store, opts...)
	p := ctrl.Initialize()
	logging.Debug("Bootstrap", "Restored %s with %s theme", p.DisplayHex, ctrl.Theme())

	var copierOpts []clipboard.Option
	if !rc.Clipboard.FallbackEnabled() {
		copierOpts = append(copierOpts, clipboard.WithTerminal(nil))
	}

	return &Services{
		Store:      store,
		Controller: ctrl,
		Copier:     clipboard.New(copierOpts...),
	}, nil
}
