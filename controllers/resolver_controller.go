package controllers

import (
	"als-keeper/internal/config"
	"als-keeper/internal/models"
	"als-keeper/services"

	"github.com/gin-gonic/gin"
)

type ResolverController struct {
	resolver *services.Resolver
	command  *services.CommandService
}

/**
 * Create new resolver controller instance
 * @param {*services.Resolver} resolver - Binary resolver
 * @param {*services.CommandService} command - Launch description builder
 * @returns {*ResolverController} New resolver controller instance
 * @example
 * controller := controllers.NewResolverController(services.GetResolver(), services.GetCommandService())
 * controller.RegisterRoutes(router)
 */
func NewResolverController(resolver *services.Resolver, command *services.CommandService) *ResolverController {
	return &ResolverController{
		resolver: resolver,
		command:  command,
	}
}

/**
 * Register resolver API routes to Gin engine
 * @param {*gin.Engine} r - Gin router instance
 * @description
 * - Registers routes for:
 *   - Binary resolution
 *   - Launch command synthesis
 *   - Workspace configuration echo
 */
func (c *ResolverController) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/als/api/v1")
	api.POST("/resolve", c.ResolveBinary)
	api.POST("/command", c.SynthesizeCommand)
	api.GET("/configuration", c.WorkspaceConfiguration)
}

// @Summary 解析语言服务器可执行文件
// @Description 按 设置覆盖 → PATH → 缓存 → 下载安装 的优先级解析出可运行的二进制路径
// @Tags Resolver
// @Accept json
// @Produce json
// @Param settings body models.LanguageServerSettings false "请求级设置，缺省时使用配置文件中的设置"
// @Success 200 {object} map[string]string "{"path": "/abs/path/to/arduino-language-server"}"
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /als/api/v1/resolve [post]
func (c *ResolverController) ResolveBinary(g *gin.Context) {
	settings, err := settingsFromRequest(g)
	if err != nil {
		g.JSON(400, gin.H{
			"code":    "settings.invalid",
			"message": err.Error(),
		})
		return
	}

	path, err := c.resolver.Resolve(g.Request.Context(), settings)
	if err != nil {
		g.JSON(500, gin.H{
			"code":    "resolve.failed",
			"message": err.Error(),
		})
		return
	}
	g.JSON(200, gin.H{"path": path})
}

// @Summary 合成启动命令
// @Description 解析二进制后合成完整的启动描述（路径、参数、环境变量）
// @Tags Resolver
// @Accept json
// @Produce json
// @Param settings body models.LanguageServerSettings false "请求级设置，缺省时使用配置文件中的设置"
// @Success 200 {object} models.CommandSpec
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /als/api/v1/command [post]
func (c *ResolverController) SynthesizeCommand(g *gin.Context) {
	settings, err := settingsFromRequest(g)
	if err != nil {
		g.JSON(400, gin.H{
			"code":    "settings.invalid",
			"message": err.Error(),
		})
		return
	}

	path, err := c.resolver.Resolve(g.Request.Context(), settings)
	if err != nil {
		g.JSON(500, gin.H{
			"code":    "resolve.failed",
			"message": err.Error(),
		})
		return
	}
	g.JSON(200, c.command.Synthesize(path, settings))
}

// @Summary 工作区配置回显
// @Description 返回配置文件中的 settings 对象，未配置时返回空对象而不是 null
// @Tags Resolver
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /als/api/v1/configuration [get]
func (c *ResolverController) WorkspaceConfiguration(g *gin.Context) {
	g.JSON(200, c.command.WorkspaceConfiguration(config.GetLanguageServerSettings()))
}

/**
 * Extract per-request settings from the body, falling back to configuration
 * @param {*gin.Context} g - Request context
 * @returns {*models.LanguageServerSettings} Settings to use for this request,
 * {error} when a body is present but not valid JSON
 * @description
 * - An absent body is not an error; the configured settings apply
 */
func settingsFromRequest(g *gin.Context) (*models.LanguageServerSettings, error) {
	if g.Request.Body == nil || g.Request.ContentLength == 0 {
		return config.GetLanguageServerSettings(), nil
	}
	var settings models.LanguageServerSettings
	if err := g.ShouldBindJSON(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}
