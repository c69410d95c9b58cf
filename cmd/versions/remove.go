package versions

import (
	"fmt"

	"als-keeper/services"

	"github.com/spf13/cobra"
)

var optRemoveVersion string

var removeCmd = &cobra.Command{
	Use:   "remove {version | -v version}",
	Short: "Remove the specified installed version",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Determine version: prioritize positional arguments, then use command line arguments
		version := optRemoveVersion
		if len(args) > 0 && args[0] != "" {
			version = args[0]
		}

		if version == "" {
			fmt.Println("Error: Version must be specified")
			return
		}

		if err := removeVersion(version); err != nil {
			fmt.Println(err)
		}
	},
}

func removeVersion(version string) error {
	if err := services.GetInstaller().Remove(version); err != nil {
		if err == services.ErrVersionNotFound {
			return fmt.Errorf("Version '%s' is not installed", version)
		}
		return fmt.Errorf("Failed to remove version '%s': %v", version, err)
	}

	fmt.Printf("Version '%s' has been successfully removed\n", version)
	return nil
}

func init() {
	removeCmd.Flags().SortFlags = false
	removeCmd.Flags().StringVarP(&optRemoveVersion, "version", "v", "", "Specify the version to remove")
	versionsCmd.AddCommand(removeCmd)
}
