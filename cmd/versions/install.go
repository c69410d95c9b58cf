package versions

import (
	"context"
	"fmt"

	"als-keeper/internal/logger"
	"als-keeper/services"

	"github.com/spf13/cobra"
)

var optVersion string

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the latest or a pinned language server version",
	Long:  "Force an acquisition pass: query the release feed, download the platform asset and install it. Installing an already present version is a no-op",
	Run: func(cmd *cobra.Command, args []string) {
		if err := installVersion(context.Background(), optVersion); err != nil {
			logger.Fatal(err)
		}
	},
}

func installVersion(ctx context.Context, tag string) error {
	version, path, err := services.GetResolver().Acquire(ctx, tag)
	if err != nil {
		return err
	}
	fmt.Printf("The '%s' is installed at %s\n", version, path)
	return nil
}

func init() {
	installCmd.Flags().SortFlags = false
	installCmd.Flags().StringVarP(&optVersion, "version", "v", "", "指定要安装的目标版本")
	versionsCmd.AddCommand(installCmd)
}
