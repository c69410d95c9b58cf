package versions

import (
	"fmt"

	"als-keeper/services"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove all but the newest installed version",
	Long:  "Prune the install root: keep the newest version directory, remove every other one",
	Run: func(cmd *cobra.Command, args []string) {
		if err := cleanVersions(); err != nil {
			fmt.Println(err)
		}
	},
}

func cleanVersions() error {
	installer := services.GetInstaller()
	versions, err := installer.InstalledVersions()
	if err != nil {
		return err
	}
	if len(versions) == 0 {
		fmt.Println("No versions installed")
		return nil
	}

	keep := ""
	for _, v := range versions {
		if v.Latest {
			keep = v.Version
		}
	}
	if keep == "" {
		return fmt.Errorf("Cannot determine the newest of %d installed versions", len(versions))
	}

	if err := installer.CleanStale(keep); err != nil {
		return err
	}
	fmt.Printf("Kept version '%s', removed the rest\n", keep)
	return nil
}

func init() {
	versionsCmd.AddCommand(cleanCmd)
}
