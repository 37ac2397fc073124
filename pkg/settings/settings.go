// Package settings provides build metadata and per-run parameters shared
// by the kvq CLI and library packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "kvq"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build, including the commit hash,
// build version, and build timestamp.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds configuration for a single execution of the application.
type Run struct {
	// MinLogLevel is the minimum zap level; 0 is Info, -1 is Debug.
	MinLogLevel int8
	// NoColor disables all styled output.
	NoColor bool
	// LiveDocument commits the document field on every keystroke instead
	// of on blur.
	LiveDocument bool
	// IsQuiet suppresses non-result output in one-shot mode.
	IsQuiet bool
}

// NewCliParams returns Run parameters with CLI defaults.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel:  0,
		NoColor:      false,
		LiveDocument: false,
		IsQuiet:      false,
	}
}
