// Package version provides version information for create-storefront.
package version

import (
	"fmt"
	"runtime"
	"time"

	"github.com/carlmjohnson/versioninfo"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = devVersion

	// GitCommit is the git commit hash.
	GitCommit = unknown

	// BuildDate is the build timestamp.
	BuildDate = unknown
)

const (
	devVersion  = "v0.0.0-dev"
	unknown     = "unknown"
	dirtySuffix = "-dirty"
)

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string `json:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion"`
}

// buildStamp is the module and VCS information embedded by the Go toolchain.
type buildStamp struct {
	Version    string
	Revision   string
	LastCommit time.Time
	Dirty      bool
}

// Get returns the current version information. Values not set via ldflags
// fall back to the module version and VCS stamp of the binary.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}

	applyStamp(&info, buildStamp{
		Version:    versioninfo.Version,
		Revision:   versioninfo.Revision,
		LastCommit: versioninfo.LastCommit,
		Dirty:      versioninfo.DirtyBuild,
	})

	return info
}

func applyStamp(info *Info, stamp buildStamp) {
	suffix := ""
	if stamp.Dirty {
		suffix = dirtySuffix
	}

	if info.Version == devVersion && stamp.Version != "" && stamp.Version != unknown && stamp.Version != "(devel)" {
		info.Version = stamp.Version + suffix
	}
	if info.GitCommit == unknown && stamp.Revision != "" && stamp.Revision != unknown {
		info.GitCommit = stamp.Revision + suffix
	}
	if info.BuildDate == unknown && !stamp.LastCommit.IsZero() {
		info.BuildDate = stamp.LastCommit.UTC().Format(time.RFC3339)
	}
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("create-storefront:\n  Version:  %s\n  Build ID: %s/%s\n  Go:       %s",
		i.Version, i.BuildDate, i.GitCommit, i.GoVersion)
}
