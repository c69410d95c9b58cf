package versions

import (
	"als-keeper/cmd/root"

	"github.com/spf13/cobra"
)

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "Installed version operations (list/install/remove/clean)",
	Long:  `Installed version operations (list/install/remove/clean)`,
}

const versionsExample = `  # list installed versions
  als-keeper versions list
  als-keeper versions install
  als-keeper versions install -v v1.2.0
  als-keeper versions remove v1.2.0
  als-keeper versions clean`

func init() {
	root.RootCmd.AddCommand(versionsCmd)

	versionsCmd.Example = versionsExample
}
