package utils

import (
	"os"
	"runtime"
	"strings"
)

/**
 * Capture the user's shell environment as a name/value map
 * @returns {map} Environment variables visible to the keeper process
 * @description
 * - POSIX-like platforms return the full process environment
 * - Windows returns an empty map; the spawned server inherits its
 *   environment from the process boundary instead
 */
func ShellEnvironment() map[string]string {
	env := make(map[string]string)
	if runtime.GOOS == "windows" {
		return env
	}
	for _, kv := range os.Environ() {
		if i := strings.Index(kv, "="); i > 0 {
			env[kv[:i]] = kv[i+1:]
		}
	}
	return env
}
