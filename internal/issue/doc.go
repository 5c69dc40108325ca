// SPDX-License-Identifier: MPL-2.0

// Package issue carries user-facing error reporting: actionable errors that
// pair a failed operation with remediation suggestions, and a catalog of
// rendered markdown help texts for the failure classes rfmlaunch users run
// into (unknown platforms, missing images, bad job specs).
package issue
