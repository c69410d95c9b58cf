package cmd

import (
	"als-keeper/cmd/root"
	"als-keeper/internal/config"
	"als-keeper/internal/utils"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display effective configuration",
	Long:  `The 'config' command prints the effective configuration after the file, environment variables and defaults are merged`,

	Run: func(cmd *cobra.Command, args []string) {
		utils.PrintYaml(config.Config)
	},
}

func init() {
	root.RootCmd.AddCommand(configCmd)

	configCmd.Example = `  als-keeper config`
}
