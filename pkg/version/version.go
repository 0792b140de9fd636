// Package version holds the adtax build information.
package version

import "fmt"

// Build-time variables injected via -ldflags, e.g.
// -X github.com/yunhoi129/adtax/pkg/version.Version=v0.3.1
var (
	Version = "v0.3.0"
	Commit  = "none"
	Date    = "unknown"
)

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// GetFullVersion returns the version with commit and build date.
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
