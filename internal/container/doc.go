// SPDX-License-Identifier: MPL-2.0

// Package container synthesizes the shell commands needed to run a workload
// inside a container platform (Docker, Sarus, Shifter, Singularity).
//
// A backend never talks to a container engine: it only assembles the command
// strings that a generated job script executes later. Callers construct or
// resolve a backend, configure its Spec, call Validate, and then read
// EmitPrepareCommands and LaunchCommand as often as needed.
package container
