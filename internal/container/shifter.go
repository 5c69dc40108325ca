// SPDX-License-Identifier: MPL-2.0

package container

// Shifter runs workloads with the Shifter container engine used at NERSC
// sites. Its command syntax is identical to Sarus except for the binary name.
type Shifter struct {
	bindPlatform
}

// NewShifter returns a Shifter platform with default attributes.
func NewShifter() *Shifter {
	return &Shifter{bindPlatform: newBindPlatform("Shifter", "shifter")}
}
