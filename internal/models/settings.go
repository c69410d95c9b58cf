package models

/**
 * User-supplied launch override for the language server binary
 * @property {string} path - Explicit executable path; when set, resolution trusts it verbatim
 * @property {[]string} arguments - Argument list passed to the server
 * @property {map} environment - Environment variables passed to the server
 */
type BinarySettings struct {
	Path        string            `json:"path,omitempty" mapstructure:"path"`
	Arguments   []string          `json:"arguments,omitempty" mapstructure:"arguments"`
	Environment map[string]string `json:"environment,omitempty" mapstructure:"environment"`
}

/**
 * Per-project language server settings, as supplied by the editor host
 * @property {*BinarySettings} binary - Optional binary override
 * @property {map} settings - Free-form object echoed back as workspace configuration
 * @description
 * - Absent settings are never an error; every consumer falls back to defaults
 */
type LanguageServerSettings struct {
	Binary   *BinarySettings        `json:"binary,omitempty" mapstructure:"binary"`
	Settings map[string]interface{} `json:"settings,omitempty" mapstructure:"settings"`
}
