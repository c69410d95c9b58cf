package run

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"als-keeper/cmd/root"
	"als-keeper/internal/config"
	"als-keeper/internal/logger"
	"als-keeper/internal/utils"
	"als-keeper/services"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [-- extra args]",
	Short: "Run the language server in the foreground",
	Long:  `Resolve the binary, synthesize the launch command and run the language server with inherited stdio. Arguments after -- are appended to the synthesized argument list`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServer(context.Background(), args); err != nil {
			logger.Fatal(err)
		}
	},
}

/**
 * Resolve, synthesize and spawn the language server
 * @param {context.Context} ctx - Context; cancellation kills the child
 * @param {[]string} extra - Extra arguments appended after the synthesized ones
 * @returns {error} Returns error if resolution or the child process fails
 * @description
 * - The synthesized environment replaces the child's environment entirely;
 *   an empty one lets the child inherit from this process instead
 */
func runServer(ctx context.Context, extra []string) error {
	settings := config.GetLanguageServerSettings()
	path, err := services.GetResolver().Resolve(ctx, settings)
	if err != nil {
		return err
	}
	spec := services.GetCommandService().Synthesize(path, settings)
	args := append(spec.Args, extra...)

	logger.Infof("starting %s", utils.FormatCommandLine(spec.Path, args, nil))

	child := exec.CommandContext(ctx, spec.Path, args...)
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr
	if len(spec.Env) > 0 {
		env := make([]string, 0, len(spec.Env))
		for key, value := range spec.Env {
			env = append(env, fmt.Sprintf("%s=%s", key, value))
		}
		child.Env = env
	}
	if err := child.Run(); err != nil {
		return fmt.Errorf("run '%s' failed: %v", spec.Path, err)
	}
	return nil
}

const runExample = `  # Run the language server until it exits
  als-keeper run
  als-keeper run -- -log -logpath /tmp/als.log`

func init() {
	runCmd.Example = runExample
	root.RootCmd.AddCommand(runCmd)
}
