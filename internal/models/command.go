package models

/**
 * Complete description of how to launch the language server
 * @property {string} path - Resolved executable path
 * @property {[]string} args - Ordered argument list
 * @property {map} env - Environment variables (keys unique)
 * @description
 * - Built fresh for every invocation, never persisted
 * - The sole contract with the process that eventually spawns the server
 */
type CommandSpec struct {
	Path string            `json:"path"`
	Args []string          `json:"args"`
	Env  map[string]string `json:"env"`
}
