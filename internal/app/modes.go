package app

import (
	"context"
	"io"

	"rgbctl/internal/cli"
	"rgbctl/internal/tui/controller"
	"rgbctl/internal/tui/model"
	"rgbctl/pkg/logging"
)

// runCLIMode prints the restored color instead of opening the picker.
func runCLIMode(_ context.Context, services *Services, out io.Writer) error {
	logging.Debug("CLI", "Running in no-TUI mode.")
	ctrl := services.Controller
	report := cli.NewColorReport(ctrl.Snapshot(), ctrl.Theme())
	return cli.NewPrinter(out, cli.OutputFormatTable).Print(report)
}

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, config *Config, services *Services) error {
	logging.Info("CLI", "Starting TUI mode...")

	// Switch logging to channel-based system for TUI integration
	logLevel := logging.LevelInfo
	if config.Debug {
		logLevel = logging.LevelDebug
	}
	logChan := logging.InitForTUI(logLevel)
	defer logging.CloseTUIChannel()

	rc := config.RgbctlConfig
	p := controller.NewProgram(ctx, model.TUIConfig{
		DebugMode:  config.Debug,
		Controller: services.Controller,
		Copier:     services.Copier,
		UI:         rc.UI,
		Feedback:   rc.Clipboard.Feedback,
		LogChannel: logChan,
	})

	// Run the TUI until user exits
	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")

	return nil
}
