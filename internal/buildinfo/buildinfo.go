// Package buildinfo holds build-time metadata injected via -ldflags.
package buildinfo

import "fmt"

// Version is the semantic version or tag for this build.
// Inject via: -X github.com/garyellow/sgpa-go/internal/buildinfo.Version=...
var Version = ""

// Commit is the git commit SHA for this build.
// Inject via: -X github.com/garyellow/sgpa-go/internal/buildinfo.Commit=...
var Commit = ""

// BuildDate is the RFC3339 build timestamp.
// Inject via: -X github.com/garyellow/sgpa-go/internal/buildinfo.BuildDate=...
var BuildDate = ""

// Release returns the version used to tag error reports, "dev" when unset.
func Release() string {
	if Version == "" {
		return "dev"
	}
	return Version
}

// String formats the build metadata for -version output.
func String() string {
	commit := Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if commit == "" {
		commit = "unknown"
	}
	date := BuildDate
	if date == "" {
		date = "unknown"
	}
	return fmt.Sprintf("sgpa %s (commit %s, built %s)", Release(), commit, date)
}
