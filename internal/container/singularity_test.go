// SPDX-License-Identifier: MPL-2.0

package container

import "testing"

func TestSingularity_EmitPrepareCommands(t *testing.T) {
	t.Parallel()

	// Singularity resolves images lazily, so the pull flag must have no effect.
	for _, pull := range []bool{true, false} {
		s := NewSingularity()
		s.Image = "docker://ubuntu:20.04"
		s.PullImage = pull

		if got := s.EmitPrepareCommands(); len(got) != 0 {
			t.Errorf("EmitPrepareCommands() with PullImage=%v = %v, want empty", pull, got)
		}
	}
}

func TestSingularity_LaunchCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		configure func(*Singularity)
		expected  string
	}{
		{
			name: "exec with single command and mount point",
			configure: func(s *Singularity) {
				s.Image = "img.sif"
				s.MountPoints = []MountPoint{{Source: "/data", Target: "/data"}}
				s.Command = "ls /data"
			},
			expected: `singularity exec -B"/data:/data" img.sif ls /data`,
		},
		{
			name: "cuda flag without payload keeps the run subcommand",
			configure: func(s *Singularity) {
				s.Image = "img.sif"
				s.WithCUDA = true
			},
			expected: "singularity run --nv img.sif",
		},
		{
			name: "cuda flag after mounts and before options",
			configure: func(s *Singularity) {
				s.Image = "img.sif"
				s.MountPoints = []MountPoint{{Source: "/scratch", Target: "/scratch"}}
				s.Options = []string{"--contain"}
				s.WithCUDA = true
				s.Command = "nvidia-smi"
			},
			expected: `singularity exec -B"/scratch:/scratch" --nv --contain img.sif nvidia-smi`,
		},
		{
			name: "commands list switches to exec",
			configure: func(s *Singularity) {
				s.Image = "img.sif"
				s.Commands = []string{"hostname", "pwd"}
			},
			expected: `singularity exec img.sif bash -c 'cd /rfm_workdir; hostname; pwd'`,
		},
		{
			name: "no payload uses run, not exec",
			configure: func(s *Singularity) {
				s.Image = "img.sif"
			},
			expected: "singularity run img.sif",
		},
		{
			name: "command takes precedence over commands",
			configure: func(s *Singularity) {
				s.Image = "img.sif"
				s.Command = "echo hi"
				s.Commands = []string{"ignored"}
			},
			expected: "singularity exec img.sif echo hi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := NewSingularity()
			tt.configure(s)

			if got := s.LaunchCommand(); got != tt.expected {
				t.Errorf("LaunchCommand() = %q, want %q", got, tt.expected)
			}
		})
	}
}
