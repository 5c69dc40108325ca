// SPDX-License-Identifier: MPL-2.0

// Package config loads the rfmlaunch application configuration and the TOML
// job specs that describe a containerized workload. A job spec is resolved
// into a configured container.Platform; the application config only supplies
// defaults (platform name, verbosity) and is read from the user config
// directory or RFMLAUNCH_* environment variables.
package config
