// ============================================================================
// tzgrid - Terminal time zone grid
// ============================================================================
//
// Package:     version
// Description: Build version information, set via -ldflags
// Author:      dpb1
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

var (
	Version   = "1.0.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

// String returns the multi-line version text printed by --version
func String() string {
	return fmt.Sprintf("%s\n  Git Commit: %s\n  Build Date: %s\n  Go Version: %s\n  OS/Arch:    %s/%s\n",
		Version, GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
