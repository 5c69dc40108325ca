// SPDX-License-Identifier: MPL-2.0

package container

import (
	"fmt"
	"strings"
)

// Singularity runs workloads with Singularity.
type Singularity struct {
	spec

	// WithCUDA enables NVIDIA GPU passthrough (--nv).
	WithCUDA bool
}

// NewSingularity returns a Singularity platform with default attributes.
func NewSingularity() *Singularity {
	return &Singularity{spec: newSpec("Singularity")}
}

// SetCUDA toggles the --nv launch flag.
func (s *Singularity) SetCUDA(enabled bool) { s.WithCUDA = enabled }

// EmitPrepareCommands returns nothing: Singularity resolves images lazily
// when the container is executed, so there is never anything to pull up
// front, regardless of PullImage.
func (s *Singularity) EmitPrepareCommands() []string {
	return nil
}

// LaunchCommand returns the singularity invocation for the configured
// payload.
//
// The default branch uses 'singularity run' (the image's runscript) while
// the explicit payload branches use 'singularity exec'; the two subcommands
// are not interchangeable.
//
// Generated command: singularity exec|run [mount flags] [--nv] [options] <image> [payload]
func (s *Singularity) LaunchCommand() string {
	runOpts := make([]string, 0, len(s.MountPoints)+len(s.Options)+1)
	for _, mp := range s.MountPoints {
		runOpts = append(runOpts, fmt.Sprintf(`-B"%s:%s"`, mp.Source, mp.Target))
	}
	if s.WithCUDA {
		runOpts = append(runOpts, "--nv")
	}
	runOpts = append(runOpts, s.Options...)

	opts := strings.Join(runOpts, " ")
	switch {
	case s.Command != "":
		return joinFields("singularity exec", opts, s.Image, s.Command)
	case len(s.Commands) > 0:
		return joinFields("singularity exec", opts, s.Image, s.payloadCommand())
	default:
		return joinFields("singularity run", opts, s.Image)
	}
}
