// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DurhamARC/reframe/internal/container"
)

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List the supported container platforms",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, TitleStyle.Render("Container platforms"))

		for _, name := range container.Names() {
			p, err := container.New(name)
			if err != nil {
				return err
			}

			var hooks []string
			if _, ok := p.(container.MPIConfigurable); ok {
				hooks = append(hooks, "MPI")
			}
			if _, ok := p.(container.CUDAConfigurable); ok {
				hooks = append(hooks, "CUDA")
			}

			line := "  " + name
			if name == cfg.DefaultPlatform {
				line += MutedStyle.Render(" (default)")
			}
			if len(hooks) > 0 {
				line += MutedStyle.Render(" [" + strings.Join(hooks, ", ") + "]")
			}
			fmt.Fprintln(out, line)
		}
		return nil
	},
}
