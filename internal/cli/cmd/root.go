// Package cmd provides Cobra CLI commands for the font catalog.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Onimuxha/font/internal/cli"
)

var (
	app     *cli.App
	rootCmd = &cobra.Command{
		Use:   "font",
		Short: "Browse, preview and download Khmer and English fonts",
		Long: `Font - a terminal catalog of Khmer and English fonts.

Search and filter a curated font collection, tweak preview text and
size per card, download font files with confirmation, and copy
ready-to-paste @font-face CSS snippets.

Use 'font browse' for the interactive TUI, or the subcommands for
scripted operations like downloads and history.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}
