package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory and file naming.
	toolName = "xcbuild"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Default path to the configuration file.
//
//	Linux:   $XDG_CONFIG_HOME/xcbuild/config.yaml or ~/.config/xcbuild/config.yaml
//	macOS:   ~/Library/Application Support/xcbuild/config.yaml
func ConfigFile() string {
	return filepath.Join(xdg.ConfigHome, toolName, "config.yaml")
}

// Default directory for locally stored artifacts.
//
//	Linux:   $XDG_DATA_HOME/xcbuild/artifacts or ~/.local/share/xcbuild/artifacts
//	macOS:   ~/Library/Application Support/xcbuild/artifacts
func Artifacts() string {
	return filepath.Join(xdg.DataHome, toolName, "artifacts")
}
