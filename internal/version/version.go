// Package version reports the build version of the roll binary.
package version

import "runtime/debug"

// Version is set at build time with
//
//	-ldflags "-X github.com/cory-johannsen/roll/internal/version.Version=v1.2.3"
var Version string

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// Get returns the binary version and whether one is known.
// The linker-provided Version wins; otherwise the main module version from the
// embedded build info is used. "(devel)" counts as unknown.
func Get() (string, bool) {
	if Version != "" {
		return Version, true
	}
	info, ok := readBuildInfo()
	if !ok {
		return "", false
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v, true
	}
	return "", false
}
