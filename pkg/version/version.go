// Package version holds build information injected via -ldflags.
package version

import (
	"fmt"
	"runtime/debug"
)

// Build-time variables injected via -ldflags:
//
//	-X github.com/modu-ai/namelint/pkg/version.Version=v0.2.0
var (
	Version = "v0.1.0"
	Commit  = "none"
	Date    = "unknown"
)

// Info is the build information of the running binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"goVersion"`
}

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// Get returns the build information. Commit and date fall back to the VCS
// stamp of `go build` when -ldflags did not set them.
func Get() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && info.Commit == "none":
			info.Commit = s.Value
		case s.Key == "vcs.time" && info.Date == "unknown":
			info.Date = s.Value
		}
	}
	return info
}

// String formats the build information on one line.
func (i Info) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", i.Version, i.Commit, i.Date)
}
