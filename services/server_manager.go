package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"als-keeper/internal/config"
	"als-keeper/internal/env"
	"als-keeper/internal/logger"
	"als-keeper/internal/models"
	"als-keeper/internal/utils"
)

type Server struct {
	cfg       *config.AppConfig
	resolver  *Resolver
	installer *Installer
	feed      *ReleaseService
	startTime time.Time
}

var server *Server

/**
 * Get server singleton bound to the loaded configuration
 * @returns {Server} Returns server instance
 * @description
 * - Shares the process-wide resolver, installer and release feed so the HTTP
 *   surface and the CLI observe the same cache and install root
 */
func GetServer() *Server {
	if server != nil {
		return server
	}
	server = NewServer(&config.Config, GetResolver(), GetInstaller(), GetReleaseService())
	return server
}

/**
 * Create new server instance wiring the keeper services together
 * @param {config.AppConfig} cfg - Application configuration
 * @param {Resolver} resolver - Binary resolver
 * @param {Installer} installer - Version directory manager
 * @param {ReleaseService} feed - Release feed client
 * @returns {Server} Returns new server instance
 */
func NewServer(cfg *config.AppConfig, resolver *Resolver, installer *Installer, feed *ReleaseService) *Server {
	return &Server{
		cfg:       cfg,
		resolver:  resolver,
		installer: installer,
		feed:      feed,
		startTime: time.Now(),
	}
}

/**
 * Run self-checks over the install state and the release feed
 * @param {context.Context} ctx - Context for the feed query
 * @returns {models.CheckResponse} Check results with pass/fail statistics
 * @description
 * - Verifies every installed version directory still carries its executable
 * - Verifies the cached resolution path, when set, still points at a file
 * - Queries the feed for the newest release and flags when no installed
 *   version matches it
 * - Used for system monitoring and health assessment
 * @example
 * server := GetServer()
 * checkResult := server.Check(context.Background())
 * fmt.Printf("System status: %s, Passed: %d/%d\n",
 *     checkResult.OverallStatus, checkResult.PassedChecks, checkResult.TotalChecks)
 */
func (s *Server) Check(ctx context.Context) models.CheckResponse {
	response := models.CheckResponse{
		Timestamp: time.Now(),
		Versions:  []models.InstalledVersion{},
	}

	// 检查已安装版本
	versions, err := s.installer.InstalledVersions()
	if err != nil {
		response.TotalChecks++
		response.FailedChecks++
		response.Problems = append(response.Problems, err.Error())
	} else {
		response.Versions = versions
		for _, v := range versions {
			response.TotalChecks++
			if v.Binary {
				response.PassedChecks++
			} else {
				response.FailedChecks++
				response.Problems = append(response.Problems,
					fmt.Sprintf("version '%s' has no executable at '%s'", v.Version, v.Path))
			}
		}
	}

	// 检查缓存路径
	if cached := s.resolver.CachedBinaryPath(); cached != "" {
		response.CachedBinaryPath = cached
		response.TotalChecks++
		if info, err := os.Stat(cached); err == nil && info.Mode().IsRegular() {
			response.PassedChecks++
		} else {
			response.FailedChecks++
			response.Problems = append(response.Problems,
				fmt.Sprintf("cached path '%s' is gone", cached))
		}
	}

	// 查询最新版本并判断是否需要升级
	response.TotalChecks++
	release, err := s.feed.LatestRelease(ctx, models.ReleaseOptions{
		RequireAssets: true,
		PreRelease:    s.cfg.Release.PreRelease,
	})
	if err != nil {
		response.FailedChecks++
		response.Problems = append(response.Problems, err.Error())
	} else {
		response.PassedChecks++
		response.LatestVersion = release.Version
		response.UpgradeNeeded = s.upgradeNeeded(release.Version, response.Versions)
	}

	if response.FailedChecks == 0 {
		response.OverallStatus = "healthy"
	} else if response.FailedChecks < response.TotalChecks/2 {
		response.OverallStatus = "warning"
	} else {
		response.OverallStatus = "error"
	}

	return response
}

func (s *Server) upgradeNeeded(latest string, versions []models.InstalledVersion) bool {
	if len(versions) == 0 {
		return true
	}
	for _, v := range versions {
		if !v.Latest {
			continue
		}
		ret, err := utils.CompareVersions(v.Version, latest)
		if err != nil {
			logger.Warnf("compare '%s' with '%s' failed: %v", v.Version, latest, err)
			return false
		}
		return ret < 0
	}
	return true
}

/**
 * Get server health status information
 * @returns {models.HealthResponse} Health status with uptime and key counters
 * @description
 * - Calculates server uptime since start
 * - Surfaces the request, resolution and download counters
 * - Used for health check endpoint and monitoring
 * @example
 * server := GetServer()
 * health := server.GetHealthz()
 * fmt.Printf("Server status: %s, Uptime: %s\n", health.Status, health.Uptime)
 */
func (s *Server) GetHealthz() models.HealthResponse {
	uptime := time.Since(s.startTime)

	installedVersions := 0
	if versions, err := s.installer.InstalledVersions(); err == nil {
		installedVersions = len(versions)
	}

	return models.HealthResponse{
		Version:   env.Version,
		StartTime: s.startTime.Format(time.RFC3339),
		Status:    "UP",
		Uptime:    uptime.String(),
		Metrics: models.Metrics{
			TotalRequests:     GetTotalRequestCount(),
			ErrorRequests:     GetTotalErrorCount(),
			Resolutions:       GetTotalResolutionCount(),
			Downloads:         GetTotalDownloadCount(),
			InstalledVersions: installedVersions,
		},
	}
}
