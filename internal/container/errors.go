// SPDX-License-Identifier: MPL-2.0

package container

import (
	"errors"
	"fmt"
)

var (
	// ErrNoImage is the sentinel error wrapped by ContainerError when a
	// platform is validated without an image.
	ErrNoImage = errors.New("no image specified")

	// ErrUnknownPlatform is the sentinel error wrapped by UnknownPlatformError.
	ErrUnknownPlatform = errors.New("unknown container platform")

	// ErrInvalidMountPoint is the sentinel error wrapped by InvalidMountPointError.
	ErrInvalidMountPoint = errors.New("invalid mount point")
)

// ContainerError reports an unlaunchable platform configuration.
type ContainerError struct {
	Platform string
	Err      error
}

// Error implements the error interface.
func (e *ContainerError) Error() string {
	return fmt.Sprintf("%s: %s", e.Platform, e.Err)
}

// Unwrap returns the underlying cause so callers can use errors.Is for
// programmatic detection.
func (e *ContainerError) Unwrap() error { return e.Err }

// UnknownPlatformError is returned by New when the platform name does not
// match any registered backend.
type UnknownPlatformError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownPlatformError) Error() string {
	return fmt.Sprintf("unknown container platform: %s", e.Name)
}

// Unwrap returns ErrUnknownPlatform for errors.Is() compatibility.
func (e *UnknownPlatformError) Unwrap() error { return ErrUnknownPlatform }

// InvalidMountPointError is returned when a MountPoint has an empty source
// or target path.
type InvalidMountPointError struct {
	Value MountPoint
}

// Error implements the error interface.
func (e *InvalidMountPointError) Error() string {
	return fmt.Sprintf("invalid mount point %q: both paths must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidMountPoint for errors.Is() compatibility.
func (e *InvalidMountPointError) Unwrap() error { return ErrInvalidMountPoint }
