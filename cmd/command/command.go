package command

import (
	"context"

	"als-keeper/cmd/root"
	"als-keeper/internal/config"
	"als-keeper/internal/logger"
	"als-keeper/internal/utils"
	"als-keeper/services"

	"github.com/spf13/cobra"
)

var optJson bool

var commandCmd = &cobra.Command{
	Use:   "command",
	Short: "Synthesize the language server launch command",
	Long:  `Resolve the binary and synthesize the complete launch description: executable path, arguments with per-OS defaults (-cli-config, -clangd, -cli) and environment variables`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := printCommand(context.Background()); err != nil {
			logger.Fatal(err)
		}
	},
}

func printCommand(ctx context.Context) error {
	settings := config.GetLanguageServerSettings()
	path, err := services.GetResolver().Resolve(ctx, settings)
	if err != nil {
		return err
	}
	spec := services.GetCommandService().Synthesize(path, settings)
	if optJson {
		utils.PrintJson(spec)
	} else {
		utils.PrintYaml(spec)
	}
	return nil
}

const commandExample = `  # Show the synthesized launch description
  als-keeper command
  als-keeper command --json`

func init() {
	commandCmd.Flags().SortFlags = false
	commandCmd.Flags().BoolVarP(&optJson, "json", "j", false, "Print the result as JSON")
	commandCmd.Example = commandExample
	root.RootCmd.AddCommand(commandCmd)
}
