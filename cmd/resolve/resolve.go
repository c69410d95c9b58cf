package resolve

import (
	"context"
	"encoding/json"
	"fmt"

	"als-keeper/cmd/root"
	"als-keeper/internal/config"
	"als-keeper/internal/logger"
	"als-keeper/services"

	"github.com/spf13/cobra"
)

var optJson bool

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the language server binary",
	Long:  `Resolve a runnable arduino-language-server binary: the settings override wins, then a PATH hit, then the acquisition cache, then the latest release is downloaded and installed`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := resolveBinary(context.Background()); err != nil {
			logger.Fatal(err)
		}
	},
}

func resolveBinary(ctx context.Context) error {
	path, err := services.GetResolver().Resolve(ctx, config.GetLanguageServerSettings())
	if err != nil {
		return err
	}
	if optJson {
		data, _ := json.Marshal(map[string]string{"path": path})
		fmt.Println(string(data))
	} else {
		fmt.Println(path)
	}
	return nil
}

const resolveExample = `  # Print the resolved binary path
  als-keeper resolve
  als-keeper resolve --json`

func init() {
	resolveCmd.Flags().SortFlags = false
	resolveCmd.Flags().BoolVarP(&optJson, "json", "j", false, "Print the result as JSON")
	resolveCmd.Example = resolveExample
	root.RootCmd.AddCommand(resolveCmd)
}
