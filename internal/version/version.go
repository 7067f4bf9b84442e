// Package version pins the toolchain version string shown by the CLI.
package version

// Version is the muac toolchain version.
const Version = "0.1.0"
