package controllers

import (
	"als-keeper/internal/config"
	"als-keeper/services"

	"github.com/gin-gonic/gin"
)

type APIController struct {
	server *services.Server
}

/**
 * Create new API controller instance
 * @param {*services.Server} server - Server instance carrying the keeper services
 * @returns {*APIController} New API controller instance
 * @description
 * - Used to manage the system-level routes (reload/check/healthz)
 * @example
 * controller := controllers.NewAPIController(services.GetServer())
 * controller.RegisterRoutes(router)
 */
func NewAPIController(server *services.Server) *APIController {
	return &APIController{
		server: server,
	}
}

/**
 * Register all API routes to Gin engine
 * @param {*gin.Engine} r - Gin router instance
 * @description
 * - Registers routes for:
 *   - Configuration reload
 *   - System self-check
 *   - Readiness probe
 */
func (a *APIController) RegisterRoutes(r *gin.Engine) {
	r.POST("/als/api/v1/reload", a.ReloadConfig)
	r.POST("/als/api/v1/check", a.Check)
	r.GET("/healthz", a.Healthz)
}

// @Summary 重新加载配置
// @Description 重新加载应用配置文件
// @Tags Config
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /als/api/v1/reload [post]
func (a *APIController) ReloadConfig(c *gin.Context) {
	if err := config.ReloadConfig(); err != nil {
		c.JSON(500, gin.H{
			"code":    "config.reload_failed",
			"message": "Failed to reload configuration: " + err.Error(),
		})
		return
	}

	c.JSON(200, gin.H{
		"status":  "success",
		"message": "Configuration reloaded successfully",
	})
}

// @Summary 执行系统检查
// @Description 立即执行各项检查，包括已安装版本的完整性、解析缓存有效性和发布源可达性
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} models.CheckResponse "检查成功，返回详细的系统状态信息"
// @Failure 500 {object} map[string]interface{} "内部服务器错误，返回错误代码和详细信息"
// @Router /als/api/v1/check [post]
func (a *APIController) Check(c *gin.Context) {
	response := a.server.Check(c.Request.Context())
	c.JSON(200, response)
}

// @Summary 业务就绪探针
// @Description 检查服务是否已经做好准备，返回服务版本、启动时间、健康状态和关键指标统计结果
// @Tags System
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /healthz [get]
func (a *APIController) Healthz(c *gin.Context) {
	response := a.server.GetHealthz()
	c.JSON(200, response)
}
