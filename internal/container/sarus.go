// SPDX-License-Identifier: MPL-2.0

package container

// Sarus runs workloads with the Sarus HPC container engine.
type Sarus struct {
	bindPlatform
}

// NewSarus returns a Sarus platform with default attributes.
func NewSarus() *Sarus {
	return &Sarus{bindPlatform: newBindPlatform("Sarus", "sarus")}
}
