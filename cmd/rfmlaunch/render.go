// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DurhamARC/reframe/internal/config"
	"github.com/DurhamARC/reframe/internal/container"
	"github.com/DurhamARC/reframe/internal/issue"
)

var (
	// flagPlatform overrides the platform named in the job spec
	flagPlatform string
	// flagImage overrides the image named in the job spec
	flagImage string
	// flagNoPull skips the image pull prepare command
	flagNoPull bool
	// flagScript emits the output as a shell snippet with a shebang
	flagScript bool

	renderCmd = &cobra.Command{
		Use:   "render <job-spec>",
		Short: "Print the prepare and launch commands for a job spec",
		Long: `Render resolves the container platform described by a TOML job spec,
validates it, and prints the prepare commands (one per line) followed by
the launch command. The output is plain text so it can be piped straight
into a job script.`,
		Args: cobra.ExactArgs(1),
		RunE: runRender,
	}
)

func init() {
	addJobSpecFlags(renderCmd)
	renderCmd.Flags().BoolVar(&flagScript, "script", false, "emit a ready-to-embed shell snippet with a shebang")
}

// addJobSpecFlags registers the override flags shared by the commands that
// consume a job spec file.
func addJobSpecFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagPlatform, "platform", "", "override the platform named in the job spec")
	cmd.Flags().StringVar(&flagImage, "image", "", "override the image named in the job spec")
	cmd.Flags().BoolVar(&flagNoPull, "no-pull", false, "skip the image pull prepare command")
}

func runRender(cmd *cobra.Command, args []string) error {
	p, err := resolveJobSpec(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagScript {
		fmt.Fprintln(out, "#!/bin/sh")
		fmt.Fprintln(out)
	}
	for _, prep := range p.EmitPrepareCommands() {
		fmt.Fprintln(out, prep)
	}
	fmt.Fprintln(out, p.LaunchCommand())

	return nil
}

// resolveJobSpec loads a job spec file, applies the CLI overrides, and
// returns a validated platform ready for command synthesis.
func resolveJobSpec(path string) (container.Platform, error) {
	spec, err := config.LoadJobSpec(path)
	if err != nil {
		switch {
		case errors.Is(err, os.ErrNotExist):
			reportIssue(issue.JobSpecNotFoundId)
		case errors.Is(err, config.ErrInvalidJobSpec):
			reportIssue(issue.JobSpecParseErrorId)
		}
		return nil, issue.WrapWithOperation(err, "load job spec")
	}

	if flagPlatform != "" {
		spec.Platform = flagPlatform
	}
	if flagImage != "" {
		spec.Image = flagImage
	}
	if flagNoPull {
		pull := false
		spec.PullImage = &pull
	}

	p, err := spec.Resolve(cfg.DefaultPlatform)
	if err != nil {
		if errors.Is(err, container.ErrUnknownPlatform) {
			reportIssue(issue.UnknownPlatformId)
		}
		return nil, issue.NewErrorContext().
			WithOperation("resolve container platform").
			WithResource(path).
			WithSuggestion("Run 'rfmlaunch platforms' to list the supported names").
			Wrap(err).
			BuildError()
	}

	if err := p.Validate(); err != nil {
		reportIssue(issue.NoImageId)
		return nil, issue.NewErrorContext().
			WithOperation("validate container platform").
			WithResource(p.Name()).
			WithSuggestion("Set 'image' in the job spec or pass --image").
			Wrap(err).
			BuildError()
	}

	return p, nil
}
