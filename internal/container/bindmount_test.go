// SPDX-License-Identifier: MPL-2.0

package container

import (
	"slices"
	"testing"
)

// bindRuntimes covers both backends that share the --mount=type=bind syntax.
var bindRuntimes = []struct {
	name    string
	binary  string
	newFunc func() Platform
}{
	{name: "Sarus", binary: "sarus", newFunc: func() Platform { return NewSarus() }},
	{name: "Shifter", binary: "shifter", newFunc: func() Platform { return NewShifter() }},
}

func TestBindPlatform_EmitPrepareCommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		image     string
		pullImage bool
		expected  func(binary string) []string
	}{
		{
			name:      "pull enabled",
			image:     "ethcscs/alpine:3.14",
			pullImage: true,
			expected: func(binary string) []string {
				return []string{binary + " pull ethcscs/alpine:3.14"}
			},
		},
		{
			name:      "pull disabled",
			image:     "ethcscs/alpine:3.14",
			pullImage: false,
			expected:  func(string) []string { return nil },
		},
		{
			name:      "locally loaded image is never pulled",
			image:     "load/library/alpine:3.14",
			pullImage: true,
			expected:  func(string) []string { return nil },
		},
	}

	for _, rt := range bindRuntimes {
		for _, tt := range tests {
			t.Run(rt.name+"/"+tt.name, func(t *testing.T) {
				t.Parallel()
				p := rt.newFunc()
				p.Spec().Image = tt.image
				p.Spec().PullImage = tt.pullImage

				got := p.EmitPrepareCommands()
				if want := tt.expected(rt.binary); !slices.Equal(got, want) {
					t.Errorf("EmitPrepareCommands() = %v, want %v", got, want)
				}
			})
		}
	}
}

func TestBindPlatform_LaunchCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		configure func(Platform)
		expected  func(binary string) string
	}{
		{
			name: "single command with mount point",
			configure: func(p Platform) {
				p.Spec().Image = "ethcscs/alpine:3.14"
				p.Spec().MountPoints = []MountPoint{{Source: "/data", Target: "/data"}}
				p.Spec().Command = "ls /data"
			},
			expected: func(binary string) string {
				return binary + ` run --mount=type=bind,source="/data",destination="/data" ethcscs/alpine:3.14 ls /data`
			},
		},
		{
			name: "mpi flag after mounts and before options",
			configure: func(p Platform) {
				p.Spec().Image = "ethcscs/osu-mb:5.8"
				p.Spec().MountPoints = []MountPoint{{Source: "/apps", Target: "/apps"}}
				p.Spec().Options = []string{"--entrypoint=sh"}
				p.Spec().Command = "./osu_latency"
				p.(MPIConfigurable).SetMPI(true)
			},
			expected: func(binary string) string {
				return binary + ` run --mount=type=bind,source="/apps",destination="/apps" --mpi --entrypoint=sh ethcscs/osu-mb:5.8 ./osu_latency`
			},
		},
		{
			name: "commands list wrapped in bash -c",
			configure: func(p Platform) {
				p.Spec().Image = "ethcscs/alpine:3.14"
				p.Spec().Commands = []string{"hostname", "cat /etc/os-release"}
			},
			expected: func(binary string) string {
				return binary + ` run ethcscs/alpine:3.14 bash -c 'cd /rfm_workdir; hostname; cat /etc/os-release'`
			},
		},
		{
			name: "default entrypoint when no payload is set",
			configure: func(p Platform) {
				p.Spec().Image = "ethcscs/alpine:3.14"
			},
			expected: func(binary string) string {
				return binary + " run ethcscs/alpine:3.14"
			},
		},
	}

	for _, rt := range bindRuntimes {
		for _, tt := range tests {
			t.Run(rt.name+"/"+tt.name, func(t *testing.T) {
				t.Parallel()
				p := rt.newFunc()
				tt.configure(p)

				if got, want := p.LaunchCommand(), tt.expected(rt.binary); got != want {
					t.Errorf("LaunchCommand() = %q, want %q", got, want)
				}
			})
		}
	}
}
