// Package paths provides centralized path handling for karabuild.
// It resolves the karabuild config and state directories following the XDG
// Base Directory specification, and the location of Karabiner-Elements'
// own configuration file.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvKarabinerJSON overrides the karabiner.json location
	EnvKarabinerJSON = "KARABINER_JSON"

	// EnvConfigDir overrides the XDG config directory for karabuild
	EnvConfigDir = "KARABUILD_CONFIG_DIR"

	// EnvStateHome is the XDG state directory variable
	EnvStateHome = "XDG_STATE_HOME"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for karabuild-specific files
	AppDirName = "karabuild"

	// ConfigFileName is the user configuration file inside ConfigDir
	ConfigFileName = "config.toml"

	// ProjectConfigFile is the optional per-directory configuration file
	ProjectConfigFile = ".karabuild.toml"

	// LogFileName is the name of the log file
	LogFileName = "karabuild.log"

	// KarabinerDir is Karabiner-Elements' config directory relative to $HOME.
	// Karabiner always uses ~/.config/karabiner, even on macOS where the XDG
	// config home would be ~/Library/Application Support.
	KarabinerDir = ".config/karabiner"

	// KarabinerFileName is Karabiner-Elements' configuration file
	KarabinerFileName = "karabiner.json"
)

// HomeDir returns the user's home directory, falling back to $HOME.
func HomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return os.Getenv(EnvHome)
}

// KarabinerConfigDir returns the Karabiner-Elements configuration directory.
func KarabinerConfigDir() string {
	return filepath.Join(HomeDir(), KarabinerDir)
}

// KarabinerConfigFile returns the path of karabiner.json, honouring
// KARABINER_JSON when set.
func KarabinerConfigFile() string {
	if p := os.Getenv(EnvKarabinerJSON); p != "" {
		return ExpandHome(p)
	}
	return filepath.Join(KarabinerConfigDir(), KarabinerFileName)
}

// ConfigDir returns the karabuild configuration directory.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFile returns the user configuration file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// StateDir returns the karabuild state directory.
// XDG_STATE_HOME is read on every call so tests can redirect it.
func StateDir() string {
	if stateHome := os.Getenv(EnvStateHome); stateHome != "" {
		return filepath.Join(stateHome, AppDirName)
	}
	return filepath.Join(HomeDir(), ".local", "state", AppDirName)
}

// LogFilePath returns the path of the karabuild log file.
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home := HomeDir()
	if home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(home, path[2:])
	}
	return path
}
