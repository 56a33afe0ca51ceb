package oaspostman

import (
	"fmt"
	"runtime"
)

// Set via ldflags at release time; development builds keep the defaults.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// Commit returns the git commit the binary was built from, or "unknown".
func Commit() string {
	return commit
}

// BuildTime returns the RFC3339 build timestamp, or "unknown".
func BuildTime() string {
	return buildTime
}

// GoVersion returns the Go runtime version the binary was compiled with.
func GoVersion() string {
	return runtime.Version()
}

// UserAgent returns the User-Agent string used by the HTTP surfaces
func UserAgent() string {
	return fmt.Sprintf("oaspostman/%s", version)
}

// BuildInfo returns a multi-line summary of the build metadata.
func BuildInfo() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nBuild Time: %s\nGo Version: %s",
		Version(), Commit(), BuildTime(), GoVersion())
}
