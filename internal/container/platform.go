// SPDX-License-Identifier: MPL-2.0

package container

import (
	"fmt"
	"log/slog"
	"strings"
)

// StageDir is the fixed path where the host-side stage directory is mounted
// inside every container, independently of MountPoints.
const StageDir = "/rfm_workdir"

type (
	// Platform is the contract every container backend implements. A caller
	// constructs (or resolves) a backend, mutates its Spec while loading
	// configuration, calls Validate once, and then reads the prepare and
	// launch commands any number of times. After Validate the instance
	// should be treated as read-only; all query methods are pure.
	Platform interface {
		// Name returns the platform name (e.g. "Docker").
		Name() string
		// Spec returns the shared attribute surface for configuration.
		Spec() *Spec
		// EmitPrepareCommands returns the shell commands that must run
		// before the launch command, typically an image pull.
		EmitPrepareCommands() []string
		// LaunchCommand returns the single shell command that starts the
		// container and runs the configured payload.
		LaunchCommand() string
		// Validate reports whether the current configuration is launchable.
		Validate() error
	}

	// MPIConfigurable is implemented by platforms with a native MPI hook
	// (Sarus, Shifter). The config layer uses it instead of a concrete type
	// switch, making it safe to add new backends.
	MPIConfigurable interface {
		SetMPI(enabled bool)
	}

	// CUDAConfigurable is implemented by platforms with NVIDIA GPU
	// passthrough (Singularity).
	CUDAConfigurable interface {
		SetCUDA(enabled bool)
	}

	// MountPoint is a host directory bound into the container filesystem.
	MountPoint struct {
		// Source is the path on the host.
		Source string
		// Target is the path inside the container.
		Target string
	}

	// Spec is the attribute surface shared by every platform. It is embedded
	// by the concrete backends and mutated by configuration-loading code.
	Spec struct {
		// Image is the container image reference. It is the only required
		// attribute; Validate fails while it is empty.
		Image string
		// Command is the shell command executed inside the container. When
		// both Command and Commands are empty, the image's default
		// entrypoint runs.
		Command string
		// Commands are shell commands joined with ';' inside a bash -c
		// payload. Command takes precedence when both are set.
		//
		// Deprecated: set Command instead. Configuration loaders should go
		// through SetCommands so the write is logged.
		Commands []string
		// PullImage controls whether prepare commands include an explicit
		// image pull.
		PullImage bool
		// MountPoints are bound into the container in order, ahead of
		// Options.
		MountPoints []MountPoint
		// Options are raw runtime flags appended verbatim after the mount
		// flags.
		Options []string
		// WorkDir is the in-container working directory for the bash -c
		// payload.
		//
		// Deprecated: pass a workdir flag through Options instead.
		// Configuration loaders should go through SetWorkDir so the write
		// is logged.
		WorkDir string

		name string
	}
)

// spec aliases Spec for embedding: an embedded field named Spec would shadow
// the promoted Spec method that satisfies the Platform interface.
type spec = Spec

// newSpec returns the default attribute state shared by all platforms.
func newSpec(name string) Spec {
	return Spec{
		name:      name,
		PullImage: true,
		WorkDir:   StageDir,
	}
}

// Name returns the name of the platform this spec belongs to.
func (s *Spec) Name() string { return s.name }

// Spec returns the spec itself. The method is promoted by the embedding
// backends, so callers can configure any Platform without knowing its
// concrete type.
func (s *Spec) Spec() *Spec { return s }

// String returns the platform name.
func (s *Spec) String() string { return s.name }

// MarshalText encodes the platform as its bare name; a backend is an opaque
// tag wherever it appears in serialized output.
func (s *Spec) MarshalText() ([]byte, error) { return []byte(s.name), nil }

// SetCommands assigns the deprecated Commands field and logs the write.
func (s *Spec) SetCommands(commands []string) {
	slog.Warn("the 'commands' field is deprecated, use 'command' instead",
		"platform", s.name)
	s.Commands = commands
}

// SetWorkDir assigns the deprecated WorkDir field and logs the write.
func (s *Spec) SetWorkDir(dir string) {
	slog.Warn("the 'workdir' field is deprecated, use 'options' to set the working directory",
		"platform", s.name)
	s.WorkDir = dir
}

// Validate returns a ContainerError when no image is configured. This is the
// only check performed at this layer; LaunchCommand assumes it has passed and
// does not re-check.
func (s *Spec) Validate() error {
	if s.Image == "" {
		return &ContainerError{Platform: s.name, Err: ErrNoImage}
	}
	return nil
}

// payloadCommand returns the bash -c payload that runs the deprecated
// Commands list: cd into WorkDir, then each command separated by ';'.
func (s *Spec) payloadCommand() string {
	return fmt.Sprintf("bash -c 'cd %s; %s'", s.WorkDir, strings.Join(s.Commands, "; "))
}

// String returns the mount point in "source:target" format for logs.
func (m MountPoint) String() string {
	return m.Source + ":" + m.Target
}

// Validate returns an error if either path of the MountPoint is empty or
// whitespace-only.
func (m MountPoint) Validate() error {
	if strings.TrimSpace(m.Source) == "" || strings.TrimSpace(m.Target) == "" {
		return &InvalidMountPointError{Value: m}
	}
	return nil
}

// joinFields assembles a command line from its non-empty parts with single
// spaces between them.
func joinFields(parts ...string) string {
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			fields = append(fields, p)
		}
	}
	return strings.Join(fields, " ")
}
