// SPDX-License-Identifier: MPL-2.0

package container

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// platformFactories maps a platform name to its constructor. The map is
// populated once at startup and only read afterwards, so lookups fail closed
// on unknown names without any dynamic type resolution.
var platformFactories = map[string]func() Platform{
	"Docker":      func() Platform { return NewDocker() },
	"Sarus":       func() Platform { return NewSarus() },
	"Shifter":     func() Platform { return NewShifter() },
	"Singularity": func() Platform { return NewSingularity() },
}

// New resolves a platform name to a freshly constructed backend with default
// attributes. Names are case-sensitive and match each backend's Name method.
func New(name string) (Platform, error) {
	factory, ok := platformFactories[name]
	if !ok {
		return nil, &UnknownPlatformError{Name: name}
	}
	return factory(), nil
}

// Names returns the registered platform names in sorted order.
func Names() []string {
	names := maps.Keys(platformFactories)
	slices.Sort(names)
	return names
}
