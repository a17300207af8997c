// Package version carries build metadata injected at link time.
package version

import "runtime"

// Build-time variables (injected via ldflags)
var (
	Version = "dev"     // Set via -X flag at build time
	Commit  = "unset"   // Set via -X flag at build time
	Date    = "unknown" // Set via -X flag at build time
)

// Info contains version and build information.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	Date      string `json:"date,omitempty"`
	GoVersion string `json:"go_version"`
}

// Get returns the build information for this binary.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
	}
}
