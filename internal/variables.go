package internal

import (
	"fmt"
	"runtime"
	"strings"
)

const (

	// Executable name, as cargo resolves it for `cargo psp`.
	Name = "cargo-psp"

	// String to indicate an undefined variable
	defaultUndefined = "(undefined)"

	// String to indicate a local (non-release) build
	defaultLocalBuild = "(local)"
)

var (
	version   = "" // Version number (e.g., "0.2.1")
	gitCommit = "" // Git commit hash (e.g., "a1b2c3d4")

	rawQuiet   = "false" // Whether to start in quiet mode
	rawDebug   = "false" // Whether to start in debug mode
	rawVerbose = "false" // Whether to start with verbose logging
)

// Returns the current version without any "v" prefix.
//
// If the version is not set, returns "(undefined)".
func Version() string {
	v := strings.TrimSpace(version)
	if v == "" {
		return defaultUndefined
	}
	return strings.TrimPrefix(strings.ToLower(v), "v")
}

// Returns the git commit hash, or "(undefined)".
func GitCommit() string {
	c := strings.TrimSpace(gitCommit)
	if c == "" {
		return defaultUndefined
	}
	return c
}

// Returns true if the binary was built without release linker flags.
func IsLocal() bool {
	return strings.TrimSpace(version) == "" || strings.TrimSpace(gitCommit) == ""
}

// Returns a detailed version string.
//
// Local builds return "(local)". Release builds are formatted as
// "<version> <git-commit> [<os>/<arch>]".
func VersionString() string {
	if IsLocal() {
		return defaultLocalBuild
	}
	return fmt.Sprintf("%s %s [%s/%s]", Version(), GitCommit(), runtime.GOOS, runtime.GOARCH)
}
