// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride allows tests to override the config directory.
// This is necessary because os.UserHomeDir() doesn't reliably respect
// the HOME environment variable on all platforms (e.g., macOS in CI).
var configDirOverride string

// configFileOverride points Load at an explicit config file, set from the
// --config CLI flag.
var configFileOverride string

// Reset clears overrides. Call from test cleanup to restore defaults.
func Reset() {
	configDirOverride = ""
	configFileOverride = ""
}

// SetConfigDirOverride sets a custom config directory path. Primarily
// intended for tests.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// SetConfigFileOverride sets an explicit config file path.
func SetConfigFileOverride(path string) {
	configFileOverride = path
}
