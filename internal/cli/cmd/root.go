// Package cmd provides Cobra CLI commands for splitpane.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/splitpane/internal/cli"
	"github.com/bnema/splitpane/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo = build.Default()
	rootCmd   = &cobra.Command{
		Use:   "splitpane",
		Short: "Binary split-pane layouts from the command line",
		Long: `Splitpane - build, edit and store binary split-pane layouts.

A layout is a tree: every container splits its area in two, side by side
(vertical) or stacked (horizontal), and every pane is a leaf. Exactly one
pane is selected at a time.

Layouts are stored by name in a local SQLite database and can be exported
to JSON or YAML documents for other tools.

Use 'splitpane edit' to open the interactive editor, or the subcommands to
script layouts.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{Interactive: cmd.Name() == "edit"})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
				app = nil
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

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "splitpane %s\n", buildInfo.Version)
		fmt.Fprintf(out, "commit: %s\n", buildInfo.Commit)
		fmt.Fprintf(out, "built: %s\n", buildInfo.BuildDate)
		fmt.Fprintf(out, "go: %s\n", buildInfo.GoVersion)
		fmt.Fprintf(out, "%s\n", build.RepoURL())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
