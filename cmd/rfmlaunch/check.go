// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/syntax"

	"github.com/DurhamARC/reframe/internal/issue"
)

var checkCmd = &cobra.Command{
	Use:   "check <job-spec>",
	Short: "Verify the synthesized commands parse as POSIX shell",
	Long: `Check renders the prepare and launch commands for a job spec and parses
each of them as POSIX shell. This catches unbalanced quotes or malformed
options before the commands are embedded into a job script.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	addJobSpecFlags(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	p, err := resolveJobSpec(args[0])
	if err != nil {
		return err
	}

	commands := append(p.EmitPrepareCommands(), p.LaunchCommand())
	parser := syntax.NewParser()
	for _, c := range commands {
		if _, err := parser.Parse(strings.NewReader(c), ""); err != nil {
			reportIssue(issue.LaunchCommandInvalidId)
			return issue.NewErrorContext().
				WithOperation("parse synthesized command").
				WithResource(c).
				WithSuggestion("Check the quoting of 'command' and 'options' in the job spec").
				Wrap(err).
				BuildError()
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %d command(s) parse as valid shell\n",
		SuccessStyle.Render("✓"), len(commands))
	return nil
}
