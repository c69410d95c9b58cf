package root

import (
	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:   "als-keeper",
	Short: "Arduino语言服务器守护程序",
	Long:  `als-keeper负责arduino-language-server的解析、下载、安装、版本管理和启动`,
}
