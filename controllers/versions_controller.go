package controllers

import (
	"als-keeper/services"

	"github.com/gin-gonic/gin"
)

type VersionsController struct {
	resolver  *services.Resolver
	installer *services.Installer
}

/**
 * Create new versions controller instance
 * @param {*services.Resolver} resolver - Binary resolver, used for forced acquisitions
 * @param {*services.Installer} installer - Version directory manager
 * @returns {*VersionsController} New versions controller instance
 * @example
 * controller := controllers.NewVersionsController(services.GetResolver(), services.GetInstaller())
 * controller.RegisterRoutes(router)
 */
func NewVersionsController(resolver *services.Resolver, installer *services.Installer) *VersionsController {
	return &VersionsController{
		resolver:  resolver,
		installer: installer,
	}
}

/**
 * Register versions API routes to Gin engine
 * @param {*gin.Engine} r - Gin router instance
 * @description
 * - Registers routes for:
 *   - Installed version listing
 *   - Forced upgrade/installation
 *   - Version removal
 */
func (c *VersionsController) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/als/api/v1")
	api.GET("/versions", c.ListVersions)
	api.POST("/versions/upgrade", c.UpgradeVersion)
	api.DELETE("/versions/:version", c.DeleteVersion)
}

// @Summary 获取已安装版本列表
// @Description 列出安装根目录下的所有版本目录及其状态
// @Tags Versions
// @Produce json
// @Success 200 {array} models.InstalledVersion
// @Failure 500 {object} models.ErrorResponse
// @Router /als/api/v1/versions [get]
func (c *VersionsController) ListVersions(g *gin.Context) {
	versions, err := c.installer.InstalledVersions()
	if err != nil {
		g.JSON(500, gin.H{
			"code":    "versions.list_failed",
			"message": err.Error(),
		})
		return
	}
	g.JSON(200, versions)
}

// @Summary 安装或升级语言服务器
// @Description 强制执行一次获取流程：查询发布源、下载并安装匹配的资产
// @Tags Versions
// @Produce json
// @Param version query string false "固定安装的版本号（如 v1.2.0），缺省时安装最新版本"
// @Success 200 {object} map[string]string "{"version": "v1.2.0", "path": "/abs/path"}"
// @Failure 500 {object} models.ErrorResponse
// @Router /als/api/v1/versions/upgrade [post]
func (c *VersionsController) UpgradeVersion(g *gin.Context) {
	version, path, err := c.resolver.Acquire(g.Request.Context(), g.Query("version"))
	if err != nil {
		g.JSON(500, gin.H{
			"code":    "versions.upgrade_failed",
			"message": err.Error(),
		})
		return
	}
	g.JSON(200, gin.H{
		"version": version,
		"path":    path,
	})
}

// @Summary 删除已安装版本
// @Description 根据版本号删除对应的版本目录
// @Tags Versions
// @Param version path string true "版本号（如 v1.2.0）"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse "{"code": "version.not_found", "message": "Version not found"}"
// @Failure 500 {object} models.ErrorResponse
// @Router /als/api/v1/versions/{version} [delete]
func (c *VersionsController) DeleteVersion(g *gin.Context) {
	version := g.Param("version")
	if err := c.installer.Remove(version); err != nil {
		if err == services.ErrVersionNotFound {
			g.JSON(404, gin.H{
				"code":    "version.not_found",
				"message": "Version not found",
			})
		} else {
			g.JSON(500, gin.H{
				"code":    "version.delete_failed",
				"message": err.Error(),
			})
		}
		return
	}
	g.JSON(200, gin.H{"status": "success"})
}
