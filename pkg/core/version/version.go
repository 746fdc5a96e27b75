// ============================================================================
// spiffy - SPIF Patent Number Checker
// ============================================================================
//
// Package:     version
// Description: Build version information
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Set at build time via -ldflags "-X github.com/msto63/spiffy/pkg/core/version.Version=..."
var (
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"git_commit" yaml:"git_commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the version information of the running binary
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Short returns "spiffy v<version>"
func (i Info) Short() string {
	return fmt.Sprintf("spiffy v%s", i.Version)
}

// Lines returns the multi-line form printed by the version command
func (i Info) Lines() []string {
	return []string{
		i.Short(),
		fmt.Sprintf("  Git Commit: %s", i.GitCommit),
		fmt.Sprintf("  Build Date: %s", i.BuildDate),
		fmt.Sprintf("  Go Version: %s", i.GoVersion),
		fmt.Sprintf("  OS/Arch:    %s", i.Platform),
	}
}
