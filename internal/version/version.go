// Package version holds build-time version metadata.
package version

// Populated via -ldflags at build time.
var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
)
