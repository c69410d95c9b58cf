package services

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"als-keeper/internal/models"
	"als-keeper/internal/utils"
)

/**
 * Command service turns a resolved binary path plus settings into the full
 * launch description handed to the process boundary
 */
type CommandService struct {
	// Host collaborators, swappable for tests.
	lookPath func(file string) (string, error)
	getenv   func(key string) string
	shellEnv func() map[string]string
	goos     string
}

var commandService *CommandService

/**
 * Get command service singleton
 * @returns {CommandService} Returns command service instance
 */
func GetCommandService() *CommandService {
	if commandService != nil {
		return commandService
	}
	commandService = NewCommandService()
	return commandService
}

/**
 * Create new command service instance
 * @returns {CommandService} Returns new command service instance
 */
func NewCommandService() *CommandService {
	return &CommandService{
		lookPath: exec.LookPath,
		getenv:   os.Getenv,
		shellEnv: utils.ShellEnvironment,
		goos:     runtime.GOOS,
	}
}

/**
 * Synthesize the launch description for a resolved binary
 * @param {string} binaryPath - Resolved executable path
 * @param {*models.LanguageServerSettings} settings - Per-project settings, may be nil
 * @returns {models.CommandSpec} Complete launch description
 * @description
 * - Args and env are seeded from the settings; user-supplied values are never
 *   reordered or rewritten
 * - Defaults are only appended for flags the user did not pass themselves:
 *   -cli-config when the conventional arduino-cli.yaml exists, -clangd and
 *   -cli when the tools are on PATH
 * - Flag and value are appended as two list elements
 * - An empty env is filled from the shell environment on darwin/linux and
 *   left empty on windows
 */
func (cs *CommandService) Synthesize(binaryPath string, settings *models.LanguageServerSettings) models.CommandSpec {
	args := []string{}
	env := map[string]string{}
	if settings != nil && settings.Binary != nil {
		args = append(args, settings.Binary.Arguments...)
		for key, value := range settings.Binary.Environment {
			env[key] = value
		}
	}

	// Flag ownership is decided over the user's own arguments, before any
	// defaults are appended.
	userSpecifiedCliConfig := hasArgument(args, "-cli-config")
	userSpecifiedClangd := hasArgument(args, "-clangd")
	userSpecifiedCli := hasArgument(args, "-cli")

	if !userSpecifiedCliConfig {
		if configPath, ok := cs.defaultCLIConfigPath(); ok {
			if _, err := os.Stat(configPath); err == nil {
				args = append(args, "-cli-config", configPath)
			}
		}
	}
	if !userSpecifiedClangd {
		if clangdPath, err := cs.lookPath("clangd"); err == nil {
			args = append(args, "-clangd", clangdPath)
		}
	}
	if !userSpecifiedCli {
		if cliPath, err := cs.lookPath("arduino-cli"); err == nil {
			args = append(args, "-cli", cliPath)
		}
	}

	if len(env) == 0 && cs.goos != "windows" {
		env = cs.shellEnv()
	}

	return models.CommandSpec{
		Path: binaryPath,
		Args: args,
		Env:  env,
	}
}

/**
 * Compute the conventional arduino-cli.yaml location for the current platform
 * @returns {string} Candidate path
 * @returns {bool} False when the platform is unknown or the anchoring
 * environment variable (HOME, LOCALAPPDATA) is unset; the caller skips the
 * default and moves on
 */
func (cs *CommandService) defaultCLIConfigPath() (string, bool) {
	switch cs.goos {
	case "darwin":
		home := cs.getenv("HOME")
		if home == "" {
			return "", false
		}
		return filepath.Join(home, "Library", "Arduino15", "arduino-cli.yaml"), true
	case "linux":
		home := cs.getenv("HOME")
		if home == "" {
			return "", false
		}
		return filepath.Join(home, ".arduino15", "arduino-cli.yaml"), true
	case "windows":
		localAppData := cs.getenv("LOCALAPPDATA")
		if localAppData == "" {
			return "", false
		}
		return filepath.Join(localAppData, "Arduino15", "arduino-cli.yaml"), true
	}
	return "", false
}

/**
 * Return the settings payload echoed back as workspace configuration
 * @param {*models.LanguageServerSettings} settings - Per-project settings, may be nil
 * @returns {map} The configured settings object verbatim, an empty object when absent
 */
func (cs *CommandService) WorkspaceConfiguration(settings *models.LanguageServerSettings) map[string]interface{} {
	if settings != nil && settings.Settings != nil {
		return settings.Settings
	}
	return map[string]interface{}{}
}

// Presence-only membership test over the argument list. Values that merely
// look like flags ("-cli" passed as a value to another flag) still count,
// matching how the defaults have always been suppressed.
func hasArgument(args []string, flag string) bool {
	for _, arg := range args {
		if arg == flag {
			return true
		}
	}
	return false
}
