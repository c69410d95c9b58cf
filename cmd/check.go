package cmd

import (
	"context"

	"als-keeper/cmd/root"
	"als-keeper/internal/utils"
	"als-keeper/services"

	"github.com/spf13/cobra"
)

var optCheckJson bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run keeper self-checks",
	Long:  `Run the keeper self-checks: installed version integrity, resolution cache validity and release feed reachability`,

	Run: func(cmd *cobra.Command, args []string) {
		response := services.GetServer().Check(context.Background())
		if optCheckJson {
			utils.PrintJson(response)
		} else {
			utils.PrintYaml(response)
		}
	},
}

func init() {
	checkCmd.Flags().SortFlags = false
	checkCmd.Flags().BoolVarP(&optCheckJson, "json", "j", false, "Print the result as JSON")
	root.RootCmd.AddCommand(checkCmd)

	checkCmd.Example = `  als-keeper check`
}
