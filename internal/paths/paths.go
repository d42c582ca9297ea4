package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for user-level directories.
	appName = "cargo-psp"

	// Toolchain bootstrap manifest read by xargo from the project root.
	ManifestFile = "Xargo.toml"

	// Packaging metadata file, at the project root and in the user config dir.
	ConfigFile = "Psp.toml"

	// Default permission mode for files written by cargo-psp.
	DefaultFileMode os.FileMode = 0644
)

// Path to the transient manifest for a project rooted at dir.
func Manifest(dir string) string {
	return filepath.Join(dir, ManifestFile)
}

// Path to the packaging config for a project rooted at dir.
func ProjectConfig(dir string) string {
	return filepath.Join(dir, ConfigFile)
}

// Path to the user-level packaging defaults.
//
//	Linux:   $XDG_CONFIG_HOME/cargo-psp/Psp.toml (~/.config/cargo-psp/Psp.toml)
//	macOS:   ~/Library/Application Support/cargo-psp/Psp.toml
//	Windows: %LOCALAPPDATA%\cargo-psp\Psp.toml
func UserConfig() string {
	return filepath.Join(xdg.ConfigHome, appName, ConfigFile)
}

// Directory holding compiled images for a target triple and profile.
//
// Mirrors cargo's layout: <target-dir>/<triple>/<profile>.
func Output(targetDir, triple, profile string) string {
	return filepath.Join(targetDir, triple, profile)
}
