// Package paths resolves the filesystem locations attributeEvents uses
// for configuration and logs, following the XDG base directory spec.
package paths

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const appDir = "attrevents"

// ConfigFile returns the path of the user configuration file. The file is
// not required to exist; config loading falls back to defaults when absent.
func ConfigFile() string {
	return filepath.Join(xdg.ConfigHome, appDir, "attrevents.toml")
}

// LogFile returns the path of the log file under the XDG state directory.
func LogFile() string {
	return filepath.Join(xdg.StateHome, appDir, "attrevents.log")
}

// DataDir returns the directory used for mutable application data, such
// as scene files created by the CLI.
func DataDir() string {
	return filepath.Join(xdg.DataHome, appDir)
}
