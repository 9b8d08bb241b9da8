// Package version reports the build version of the footprint binary.
package version

import "runtime/debug"

// Set at build time via -ldflags "-X github.com/rshade/footprint/pkg/version.version=v1.2.3".
//
//nolint:gochecknoglobals // Overridden by the linker.
var (
	version   = ""
	gitCommit = ""
	buildDate = ""
)

const devVersion = "dev"

// GetVersion returns the linker-injected version, falling back to the module
// version recorded by `go install` and finally "dev".
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return devVersion
}

// GetGitCommit returns the linker-injected commit, or the VCS revision
// stamped into the binary.
func GetGitCommit() string {
	if gitCommit != "" {
		return gitCommit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return ""
}

// GetBuildDate returns the linker-injected build date, if any.
func GetBuildDate() string {
	return buildDate
}
