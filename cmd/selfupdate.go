package cmd

import (
	"context"
	"fmt"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"

	"rgbctl/pkg/logging"
)

func newSelfUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "self-update",
		Short: "Update rgbctl to the latest release",
		Long: `Checks for the latest release on GitHub and replaces the running binary
when a newer version exists.

The release repository is read from update.repository ("owner/name") in
config.yaml.`,
		Args: cobra.NoArgs,
		RunE: runSelfUpdate,
	}
}

func runSelfUpdate(cmd *cobra.Command, args []string) error {
	current := rootCmd.Version
	if current == "" || current == "dev" {
		return fmt.Errorf("cannot self-update a development version")
	}

	application, err := newApplication(true)
	if err != nil {
		return err
	}
	slug := application.Config().Update.Repository
	if slug == "" {
		return fmt.Errorf("no update repository configured, set update.repository in config.yaml")
	}

	ctx := context.Background()
	if cmd != nil {
		ctx = commandContext(cmd)
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(slug))
	if err != nil {
		return fmt.Errorf("error detecting latest release: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found in %s", slug)
	}
	if latest.LessOrEqual(current) {
		fmt.Printf("rgbctl %s is up to date\n", current)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}
	logging.Info("SelfUpdate", "Updating %s from %s to %s", exe, current, latest.Version())
	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("error updating binary: %w", err)
	}
	fmt.Printf("Successfully updated to version %s\n", latest.Version())
	return nil
}
