// SPDX-License-Identifier: MPL-2.0

// rfmlaunch synthesizes container prepare and launch commands from a TOML
// job spec, for embedding into generated job scripts. It never executes
// containers itself: the output is plain shell text on stdout.
package main
