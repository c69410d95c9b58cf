package server

import (
	"als-keeper/cmd/root"
	"als-keeper/controllers"
	"als-keeper/internal/config"
	"als-keeper/internal/logger"
	"als-keeper/internal/middleware"
	"als-keeper/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "启动HTTP服务",
	Run: func(cmd *cobra.Command, args []string) {
		if err := startServer(); err != nil {
			logger.Fatal(err)
		}
	},
}

func startServer() error {
	if config.Config.Server.Mode != "" {
		gin.SetMode(config.Config.Server.Mode)
	}
	router := gin.Default()
	router.Use(middleware.MetricsMiddleware())

	// 注册API路由
	controllers.NewAPIController(services.GetServer()).RegisterRoutes(router)
	controllers.NewResolverController(services.GetResolver(), services.GetCommandService()).RegisterRoutes(router)
	controllers.NewVersionsController(services.GetResolver(), services.GetInstaller()).RegisterRoutes(router)

	if config.Config.Metrics.Enabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	logger.Infof("listening on %s", config.Config.Server.Address)
	return router.Run(config.Config.Server.Address)
}

func init() {
	root.RootCmd.AddCommand(serverCmd)

	serverCmd.Example = `  als-keeper server`
}
