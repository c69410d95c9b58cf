package env

import (
	"os"
	"path/filepath"
)

// Build metadata, injected with -ldflags at release time.
var (
	Version       = ""
	BuildTime     = ""
	BuildTag      = ""
	BuildCommitId = ""
)

// (default: %USERPROFILE%/.als-keeper on Windows, $HOME/.als-keeper on Linux)
var KeeperDir string = GetKeeperDir()

/**
 * Get als-keeper directory path
 * @returns {string} Returns keeper directory path
 * @description
 * - Honors the ALS_KEEPER_DIR environment variable when set
 * - Falls back to .als-keeper under the user home directory
 */
func GetKeeperDir() string {
	if dir := os.Getenv("ALS_KEEPER_DIR"); dir != "" {
		return dir
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".als-keeper")
}
