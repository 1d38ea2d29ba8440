package version

import "fmt"

// These variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/philipparndt/elevatorfit/version.Version=1.2.0 ..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// GetFullVersion returns the version with commit and build date, or just
// "dev" for local builds
func GetFullVersion() string {
	if Version == "dev" {
		return "dev"
	}
	return fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate)
}
