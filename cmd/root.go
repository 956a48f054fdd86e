package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rgbctl/internal/app"
)

var (
	// rootDebug enables debug logging for every command.
	rootDebug bool

	// rootConfigPath replaces the layered config lookup with one directory.
	rootConfigPath string

	// rootNoTUI prints the current color instead of opening the picker.
	rootNoTUI bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rgbctl",
	Short: "Pick, convert and remember RGB colors from the terminal",
	Long: `rgbctl is an RGB color picker for the terminal.

Run without a subcommand to open the interactive picker: three channel
sliders, hex and decimal inputs and a live preview that keep each other in
sync. The last color and the light/dark theme are remembered between runs.

The subcommands work on the same remembered color without a UI, convert
between notations, and expose the picker to AI assistants over MCP.`,
	Args: cobra.NoArgs,
	RunE: runRoot,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid colors, unreadable config)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "rgbctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

// pickCmd opens the picker explicitly
var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Open the interactive color picker",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPicker(cmd, false)
	},
}

func runRoot(cmd *cobra.Command, args []string) error {
	return runPicker(cmd, rootNoTUI)
}

func runPicker(cmd *cobra.Command, noTUI bool) error {
	application, err := newApplication(noTUI)
	if err != nil {
		return err
	}
	application.SetOutput(cmd.OutOrStdout())
	return application.Run(commandContext(cmd))
}

// newApplication bootstraps config, state and the picker controller from the
// global flags.
func newApplication(noTUI bool) (*app.Application, error) {
	cfg := app.NewConfig(noTUI, rootDebug, rootConfigPath)
	application, err := app.NewApplication(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return application, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func init() {
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Load config.yaml from this directory only (default: user and project config)")
	rootCmd.Flags().BoolVar(&rootNoTUI, "no-tui", false, "Print the current color instead of opening the picker")
}
