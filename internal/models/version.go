package models

/**
 * Installed version directory (serialized to JSON format)
 * @property {string} version - Version identifier, e.g. "v1.2.0"
 * @property {string} path - Version directory path on disk
 * @property {bool} binary - Whether the executable is present inside the directory
 * @property {bool} latest - Whether this is the newest installed version
 */
type InstalledVersion struct {
	Version string `json:"version"`
	Path    string `json:"path"`
	Binary  bool   `json:"binary"`
	Latest  bool   `json:"latest"`
}
