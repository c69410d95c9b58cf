package main

import (
	_ "als-keeper/cmd"
	"als-keeper/cmd/root"
	"als-keeper/internal/config"
	"als-keeper/internal/logger"
	"os"
)

func main() {
	// 服务器模式下日志同时写入文件，其余命令只打控制台
	isServerMode := len(os.Args) > 1 && os.Args[1] == "server"

	logger.InitLoggerWithMode(&config.Config.Log, isServerMode)

	if err := root.RootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
	os.Exit(0)
}
