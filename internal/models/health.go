package models

// HealthResponse 健康检查响应结构
// @Description Health check API response structure
type HealthResponse struct {
	Version   string  `json:"version" example:"1.0.0"`
	StartTime string  `json:"startTime" example:"2024-01-01T10:00:00Z"`
	Status    string  `json:"status" example:"UP"`
	Uptime    string  `json:"uptime" example:"1h30m45s"`
	Metrics   Metrics `json:"metrics"`
}

// Metrics 关键指标结构
// @Description Key runtime counters surfaced by the health endpoint
type Metrics struct {
	TotalRequests     int64 `json:"totalRequests" example:"1000"`
	ErrorRequests     int64 `json:"errorRequests" example:"5"`
	Resolutions       int64 `json:"resolutions" example:"42"`
	Downloads         int64 `json:"downloads" example:"3"`
	InstalledVersions int   `json:"installedVersions" example:"1"`
}
