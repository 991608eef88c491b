// Package buildinfo carries release metadata set with -ldflags
// "-X github.com/aidanlsb/didact/internal/buildinfo.Version=...".
package buildinfo

// Empty in development builds; the version command then falls back to the
// module's embedded build info.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)
