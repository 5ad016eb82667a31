// Package version reports the uqgen build version.
package version

import (
	"fmt"
	"runtime/debug"
)

// Build-time variables injected via -ldflags. When they are left at their
// defaults the module build info is consulted, so "go install" builds still
// report a version.
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the current version string.
func GetVersion() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := readBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// GetFullVersion returns a formatted full version string.
func GetFullVersion() string {
	commit, date := Commit, Date
	if commit == "" || date == "" {
		if info, ok := readBuildInfo(); ok {
			for _, s := range info.Settings {
				switch {
				case s.Key == "vcs.revision" && commit == "":
					commit = s.Value
				case s.Key == "vcs.time" && date == "":
					date = s.Value
				}
			}
		}
	}
	if commit == "" {
		commit = "none"
	}
	if date == "" {
		date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", GetVersion(), commit, date)
}
