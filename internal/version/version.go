// Package version provides build-time version information for splitpane.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

// Build-time variables, set via ldflags:
//
//	go build -ldflags "-X splitpane/internal/version.Version=1.0.0 \
//	                   -X splitpane/internal/version.Commit=abc123 \
//	                   -X splitpane/internal/version.BuildTime=2024-01-01T00:00:00Z"
var (
	Version   = "0.1.0-dev"
	Commit    = "unknown"
	BuildTime = ""
)

// Info contains version information.
type Info struct {
	Version   string    `json:"version" yaml:"version"`
	Commit    string    `json:"commit" yaml:"commit"`
	BuildTime time.Time `json:"build_time,omitzero" yaml:"build_time,omitempty"`
	GoVersion string    `json:"go_version" yaml:"go_version"`
	Platform  string    `json:"platform" yaml:"platform"`
}

// Get returns the version information. When Commit was not set at link
// time, the VCS revision recorded by the Go toolchain is used if present.
func Get() Info {
	var buildTime time.Time
	if BuildTime != "" {
		if t, err := time.Parse(time.RFC3339, BuildTime); err == nil {
			buildTime = t
		}
	}

	commit := Commit
	if commit == "unknown" {
		if bi, ok := debug.ReadBuildInfo(); ok {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" && s.Value != "" {
					commit = s.Value
				}
			}
		}
	}

	return Info{
		Version:   Version,
		Commit:    commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a human-readable version string.
func (i Info) String() string {
	if i.Commit != "unknown" && len(i.Commit) > 7 {
		return fmt.Sprintf("%s (%s)", i.Version, i.Commit[:7])
	}
	return i.Version
}

// Full returns a detailed version string.
func (i Info) Full() string {
	buildTimeStr := "unknown"
	if !i.BuildTime.IsZero() {
		buildTimeStr = i.BuildTime.Format(time.RFC3339)
	}
	return fmt.Sprintf("Version: %s\nCommit: %s\nBuild Time: %s\nGo Version: %s\nOS/Arch: %s",
		i.Version, i.Commit, buildTimeStr, i.GoVersion, i.Platform)
}
