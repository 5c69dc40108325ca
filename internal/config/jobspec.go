// SPDX-License-Identifier: MPL-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/DurhamARC/reframe/internal/container"
)

// ErrInvalidJobSpec is the sentinel error wrapped by job spec validation
// failures.
var ErrInvalidJobSpec = errors.New("invalid job spec")

type (
	// JobSpec is the TOML document describing one containerized workload.
	//
	// Example:
	//
	//	platform = "Sarus"
	//	image = "ethcscs/osu-mb:5.8"
	//	command = "./osu_latency"
	//	with_mpi = true
	//
	//	[[mount]]
	//	host = "/scratch/data"
	//	container = "/data"
	JobSpec struct {
		// Platform names the container backend. Falls back to the
		// application default when empty.
		Platform string `toml:"platform"`
		// Image is the container image reference.
		Image string `toml:"image"`
		// Command is the shell command to run inside the container.
		Command string `toml:"command"`
		// Commands is the deprecated multi-command payload.
		Commands []string `toml:"commands"`
		// PullImage is a tri-state: when absent the platform default
		// (pull enabled) is kept.
		PullImage *bool `toml:"pull_image"`
		// Mounts are bound into the container in declaration order.
		Mounts []MountSpec `toml:"mount"`
		// Options are raw runtime flags passed through verbatim.
		Options []string `toml:"options"`
		// WorkDir is the deprecated in-container working directory.
		WorkDir string `toml:"workdir"`
		// WithMPI enables the MPI hook on platforms that have one.
		WithMPI bool `toml:"with_mpi"`
		// WithCUDA enables GPU passthrough on platforms that have it.
		WithCUDA bool `toml:"with_cuda"`
	}

	// MountSpec is one host/container path pair in a job spec.
	MountSpec struct {
		Host      string `toml:"host"`
		Container string `toml:"container"`
	}
)

// LoadJobSpec reads and decodes a TOML job spec file. Unknown fields are
// rejected so typos surface as errors instead of silently changing the
// launch command.
func LoadJobSpec(path string) (*JobSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job spec %s: %w", path, err)
	}
	return ParseJobSpec(data)
}

// ParseJobSpec decodes a TOML job spec document.
func ParseJobSpec(data []byte) (*JobSpec, error) {
	spec := &JobSpec{}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(spec); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJobSpec, err)
	}
	return spec, nil
}

// Resolve constructs and configures the container platform described by the
// spec. fallbackPlatform is used when the spec names none. The returned
// platform still has to be validated by the caller before its commands are
// used; Resolve only rejects malformed mount points and unknown platform
// names.
func (s *JobSpec) Resolve(fallbackPlatform string) (container.Platform, error) {
	name := s.Platform
	if name == "" {
		name = fallbackPlatform
	}

	p, err := container.New(name)
	if err != nil {
		return nil, err
	}

	spec := p.Spec()
	spec.Image = s.Image
	spec.Command = s.Command
	if len(s.Commands) > 0 {
		spec.SetCommands(s.Commands)
	}
	if s.PullImage != nil {
		spec.PullImage = *s.PullImage
	}
	if s.WorkDir != "" {
		spec.SetWorkDir(s.WorkDir)
	}
	spec.Options = s.Options

	var mountErrs []error
	for _, m := range s.Mounts {
		mp := container.MountPoint{Source: m.Host, Target: m.Container}
		if err := mp.Validate(); err != nil {
			mountErrs = append(mountErrs, err)
			continue
		}
		spec.MountPoints = append(spec.MountPoints, mp)
	}
	if len(mountErrs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJobSpec, errors.Join(mountErrs...))
	}

	if s.WithMPI {
		if m, ok := p.(container.MPIConfigurable); ok {
			m.SetMPI(true)
		} else {
			slog.Warn("with_mpi has no effect on this platform", "platform", name)
		}
	}
	if s.WithCUDA {
		if c, ok := p.(container.CUDAConfigurable); ok {
			c.SetCUDA(true)
		} else {
			slog.Warn("with_cuda has no effect on this platform", "platform", name)
		}
	}

	return p, nil
}
