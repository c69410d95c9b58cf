package utils

import (
	"fmt"
	"sort"
	"strings"
)

/**
 * Render a launch description as a single printable shell-style line
 * @param {string} path - Executable path
 * @param {[]string} args - Argument list
 * @param {map} env - Environment variables, printed as KEY=VALUE prefixes (sorted), may be nil
 * @returns {string} One line suitable for logs and CLI output
 * @description
 * - Display only; the spawn boundary always receives the structured form
 */
func FormatCommandLine(path string, args []string, env map[string]string) string {
	parts := make([]string, 0, len(env)+len(args)+1)

	keys := make([]string, 0, len(env))
	for key := range env {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", key, quoteArgument(env[key])))
	}

	parts = append(parts, quoteArgument(path))
	for _, arg := range args {
		parts = append(parts, quoteArgument(arg))
	}
	return strings.Join(parts, " ")
}

func quoteArgument(s string) string {
	if s == "" || strings.ContainsAny(s, " \t'\"$&|;<>()") {
		return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
	}
	return s
}
