// Package version holds build-time version information.
//
// Values are stamped with -ldflags, for example:
//
//	-X github.com/MacroPower/bookredirect/internal/version.Version=1.2.3
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the semantic version of the build.
	Version = "0.0.0"
	// Revision is the VCS revision of the build. When not stamped it is read
	// from the embedded build info.
	Revision = revision()
)

func revision() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return s.Value
			}
		}
	}

	return "unknown"
}

// String returns the version and revision.
func String() string {
	return fmt.Sprintf("%s+%s", Version, Revision)
}
