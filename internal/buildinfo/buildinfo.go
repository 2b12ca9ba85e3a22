// Package buildinfo exposes the version data stamped at build time.
package buildinfo

import (
	"fmt"
	"io"
)

// Set via -ldflags at build time.
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

// PrintBuildData writes the build metadata banner to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", buildCommit)
}

// Version returns the stamped semantic version.
func Version() string {
	return buildVersion
}
