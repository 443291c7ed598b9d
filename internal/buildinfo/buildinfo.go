// Package buildinfo exposes the version metadata stamped at link time.
package buildinfo

import (
	"fmt"
	"io"
)

// Populated via -ldflags "-X ...". "N/A" means a local, unstamped build.
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

// PrintBuildData writes the build metadata to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", buildCommit)
}
