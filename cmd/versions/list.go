package versions

import (
	"fmt"

	"als-keeper/internal/utils"
	"als-keeper/services"

	"github.com/iancoleman/orderedmap"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed language server versions",
	Long:  "List the version directories under the install root, whether each still carries its executable, and which one is newest",
	Run: func(cmd *cobra.Command, args []string) {
		if err := listVersions(); err != nil {
			fmt.Println(err)
		}
	},
}

/**
 *	Fields displayed in list format
 */
type Version_Columns struct {
	Version string `json:"version"`
	Latest  string `json:"latest"`
	Binary  string `json:"binary"`
	Path    string `json:"path"`
}

func listVersions() error {
	versions, err := services.GetInstaller().InstalledVersions()
	if err != nil {
		return err
	}
	if len(versions) == 0 {
		fmt.Println("No versions installed")
		return nil
	}
	var dataList []*orderedmap.OrderedMap
	for _, v := range versions {
		row := Version_Columns{}
		row.Version = v.Version
		row.Latest = "-"
		if v.Latest {
			row.Latest = "*"
		}
		row.Binary = "missing"
		if v.Binary {
			row.Binary = "ok"
		}
		row.Path = v.Path

		recordMap, _ := utils.StructToOrderedMap(row)
		dataList = append(dataList, recordMap)
	}

	utils.PrintFormat(dataList)
	return nil
}

func init() {
	versionsCmd.AddCommand(listCmd)
}
