// SPDX-License-Identifier: MPL-2.0

package container

import (
	"fmt"
	"strings"
)

// bindPlatform implements the behavior shared by the HPC runtimes that use
// --mount=type=bind syntax (Sarus, Shifter). The concrete types embed it and
// differ only in the binary they invoke.
type bindPlatform struct {
	spec

	// WithMPI enables the runtime's native MPI hook (--mpi).
	WithMPI bool

	binary string
}

func newBindPlatform(name, binary string) bindPlatform {
	return bindPlatform{spec: newSpec(name), binary: binary}
}

// SetMPI toggles the --mpi launch flag.
func (p *bindPlatform) SetMPI(enabled bool) { p.WithMPI = enabled }

// EmitPrepareCommands pulls the image unless pulling is disabled or the image
// was loaded locally. Images are referenced as <reposerver>/<user>/<image>:<tag>;
// an image loaded from a local archive uses the literal reposerver "load" and
// cannot be pulled from a registry.
func (p *bindPlatform) EmitPrepareCommands() []string {
	if !p.PullImage || strings.HasPrefix(p.Image, "load/") {
		return nil
	}
	return []string{p.binary + " pull " + p.Image}
}

// LaunchCommand returns the runtime invocation for the configured payload.
//
// Generated command: <binary> run [mount flags] [--mpi] [options] <image> [payload]
func (p *bindPlatform) LaunchCommand() string {
	runOpts := make([]string, 0, len(p.MountPoints)+len(p.Options)+1)
	for _, mp := range p.MountPoints {
		runOpts = append(runOpts,
			fmt.Sprintf(`--mount=type=bind,source="%s",destination="%s"`, mp.Source, mp.Target))
	}
	if p.WithMPI {
		runOpts = append(runOpts, "--mpi")
	}
	runOpts = append(runOpts, p.Options...)

	run := p.binary + " run"
	opts := strings.Join(runOpts, " ")
	switch {
	case p.Command != "":
		return joinFields(run, opts, p.Image, p.Command)
	case len(p.Commands) > 0:
		return joinFields(run, opts, p.Image, p.payloadCommand())
	default:
		return joinFields(run, opts, p.Image)
	}
}
