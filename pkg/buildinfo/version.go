// Package buildinfo provides build-time version information for oscviz.
//
// Release builds inject the values via ldflags:
//
//	go build -ldflags "-X github.com/idkwhattoputkk/OSC-webcam/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/idkwhattoputkk/OSC-webcam/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/idkwhattoputkk/OSC-webcam/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Development builds keep the defaults below.
package buildinfo

import "fmt"

var (
	// Version is the semantic version (e.g., "v0.3.0").
	Version = "dev"

	// Commit is the git commit SHA the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// String returns the build information as a multi-line block.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
