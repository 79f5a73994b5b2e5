// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for catwalk.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/catwalk-dev/catwalk/internal/config"
	"github.com/catwalk-dev/catwalk/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg holds the loaded configuration, populated by initRootConfig.
	cfg *config.Config

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "catwalk",
		Short: "A college catalog analysis toolkit",
		Long: TitleStyle.Render("catwalk") + SubtitleStyle.Render(" - A college catalog analysis toolkit") + `

catwalk walks a published college catalog site, builds a dictionary of
every course it finds, and turns the catalog into summaries, JSON
exports, prerequisite graphs, and printable PDF reports.

The 'setup' command prepares the companion Python environment used by
the optional analysis notebooks that consume catwalk's JSON exports.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Run 'catwalk setup' to prepare the workspace
  2. Build the course dictionary: catwalk dict <catalog-url>
  3. Export the catalog: catwalk export <catalog-url>

` + SubtitleStyle.Render("Examples:") + `
  catwalk dict https://catalog.sjf.edu/2025-2026/undergraduate/
  catwalk summarize https://catalog.sjf.edu/2025-2026/undergraduate/
  catwalk export https://catalog.sjf.edu/2025-2026/undergraduate/
  catwalk graph 2025-2026_undergraduate.json
  catwalk flow https://catalog.sjf.edu/2025-2026/undergraduate/
  catwalk config show        Show current configuration`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/catwalk/config.toml)")

	// Add subcommands
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(dictCmd)
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(depsCmd)
	rootCmd.AddCommand(flowCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	loaded, err := config.NewProvider().Load(context.Background(), config.LoadOptions{
		ConfigFilePath: cfgFile,
	})
	if err != nil {
		// Always surface config loading errors to the user
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}
	if loaded == nil {
		loaded = config.DefaultConfig()
	}
	cfg = loaded

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = cfg.UI.Verbose
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}
