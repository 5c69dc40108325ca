// SPDX-License-Identifier: MPL-2.0

package container

import (
	"fmt"
	"strings"
)

// Docker runs workloads with the Docker engine.
type Docker struct {
	spec
}

// NewDocker returns a Docker platform with default attributes.
func NewDocker() *Docker {
	return &Docker{spec: newSpec("Docker")}
}

// EmitPrepareCommands pulls the image up front unless pulling is disabled.
func (d *Docker) EmitPrepareCommands() []string {
	if !d.PullImage {
		return nil
	}
	return []string{"docker pull " + d.Image}
}

// LaunchCommand returns the docker invocation for the configured payload.
//
// Generated command: docker run --rm [mount flags] [options] <image> [payload]
func (d *Docker) LaunchCommand() string {
	runOpts := make([]string, 0, len(d.MountPoints)+len(d.Options))
	for _, mp := range d.MountPoints {
		runOpts = append(runOpts, fmt.Sprintf(`-v "%s":"%s"`, mp.Source, mp.Target))
	}
	runOpts = append(runOpts, d.Options...)

	opts := strings.Join(runOpts, " ")
	switch {
	case d.Command != "":
		return joinFields("docker run --rm", opts, d.Image, d.Command)
	case len(d.Commands) > 0:
		return joinFields("docker run --rm", opts, d.Image, d.payloadCommand())
	default:
		return joinFields("docker run --rm", opts, d.Image)
	}
}
