// SPDX-License-Identifier: MIT
// Package build exposes version metadata embedded at compile time via
// -ldflags. Development builds fall back to "dev".
package build

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Info describes the running build.
type Info struct {
	Version string
	Commit  string
	Date    string
}

// GetInfo returns the build metadata for this binary.
func GetInfo() Info {
	return Info{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}
