package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"rgbctl/internal/config"
	"rgbctl/internal/picker"
	"rgbctl/pkg/logging"
)

// Application is the main application structure that bootstraps and runs rgbctl
type Application struct {
	config   *Config
	services *Services
	out      io.Writer
}

// NewApplication creates and initializes a new application instance
func NewApplication(cfg *Config, opts ...picker.Option) (*Application, error) {
	// Configure logging based on debug flag
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}

	// Logs go to stderr so command output on stdout stays clean
	logging.InitForCLI(appLogLevel, os.Stderr)

	rgbctlCfg, err := loadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	cfg.RgbctlConfig = &rgbctlCfg

	services, err := InitializeServices(cfg, opts...)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
		out:      os.Stdout,
	}, nil
}

func loadConfig(path string) (config.RgbctlConfig, error) {
	if path != "" {
		cfg, err := config.LoadConfigFromPath(path)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load rgbctl configuration from path: %s", path)
			return cfg, fmt.Errorf("failed to load rgbctl configuration from path %s: %w", path, err)
		}
		logging.Debug("Bootstrap", "Loaded configuration from custom path: %s", path)
		return cfg, nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to load rgbctl configuration")
		return cfg, fmt.Errorf("failed to load rgbctl configuration: %w", err)
	}
	logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	return cfg, nil
}

// Services returns the initialized services.
func (a *Application) Services() *Services {
	return a.services
}

// Config returns the loaded configuration.
func (a *Application) Config() config.RgbctlConfig {
	return *a.config.RgbctlConfig
}

// SetOutput redirects the non-interactive report.
func (a *Application) SetOutput(w io.Writer) {
	a.out = w
}

// Run executes the application in the appropriate mode
func (a *Application) Run(ctx context.Context) error {
	if a.config.NoTUI {
		return a.runCLIMode(ctx)
	}
	return a.runTUIMode(ctx)
}

// runCLIMode runs the application in non-interactive CLI mode
func (a *Application) runCLIMode(ctx context.Context) error {
	return runCLIMode(ctx, a.services, a.out)
}

// runTUIMode runs the application in interactive TUI mode
func (a *Application) runTUIMode(ctx context.Context) error {
	return runTUIMode(ctx, a.config, a.services)
}
