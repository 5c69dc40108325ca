// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/DurhamARC/reframe/internal/config"
	"github.com/DurhamARC/reframe/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug logging and full error chains
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg holds the loaded application config; falls back to defaults when
	// loading fails.
	cfg = config.DefaultConfig()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "rfmlaunch",
		Short: "Synthesize container launch commands for job scripts",
		Long: TitleStyle.Render("rfmlaunch") + SubtitleStyle.Render(" - container launch command synthesis") + `

rfmlaunch turns a TOML job spec into the shell commands that run a
workload inside a container platform (Docker, Sarus, Shifter or
Singularity): zero or more prepare commands (typically an image pull)
followed by a single launch command. The output is meant to be embedded
into a generated job script; nothing is executed.

` + SubtitleStyle.Render("Examples:") + `
  rfmlaunch render job.toml        Print prepare + launch commands
  rfmlaunch render --script job.toml
                                   Emit a ready-to-embed shell snippet
  rfmlaunch check job.toml         Verify the commands parse as POSIX shell
  rfmlaunch platforms              List the supported platforms`,
		SilenceUsage: true,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/rfmlaunch/config.toml)")

	// Add subcommands
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(platformsCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. It is called by main.main() and only needs to happen once.
func Execute() {
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// initRootConfig reads in the config file and environment variables, then
// installs the CLI logger as the default slog handler so deprecation
// warnings from the library packages share the CLI's output format.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFileOverride(cfgFile)
	}

	loaded, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	} else {
		cfg = loaded
	}

	level := charmlog.WarnLevel
	if verbose || cfg.Verbose {
		level = charmlog.DebugLevel
	}
	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: false,
		Level:           level,
	})
	slog.SetDefault(slog.New(logger))
}

// formatErrorForDisplay returns the actionable rendering of err when it has
// one, falling back to the plain error string.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}

// reportIssue renders the catalog entry for id to stderr. Rendering failures
// are ignored: the returned actionable error carries the same information in
// plain text.
func reportIssue(id issue.Id) {
	entry := issue.Get(id)
	if entry == nil {
		return
	}
	if md, err := entry.Render("dark"); err == nil {
		fmt.Fprintln(os.Stderr, md)
	}
}
