package models

import (
	"time"
)

// CheckResponse 检查API响应结构
// @Description System check API response structure
type CheckResponse struct {
	Timestamp        time.Time          `json:"timestamp" example:"2024-01-01T10:00:00Z"`
	CachedBinaryPath string             `json:"cachedBinaryPath,omitempty" example:"/home/u/.als-keeper/language-server/arduino-language-server-v1.2.0/arduino-language-server"`
	LatestVersion    string             `json:"latestVersion,omitempty" example:"v1.2.0"`
	UpgradeNeeded    bool               `json:"upgradeNeeded" example:"false"`
	Versions         []InstalledVersion `json:"versions"`
	Problems         []string           `json:"problems,omitempty"`
	OverallStatus    string             `json:"overallStatus" example:"healthy"`
	TotalChecks      int                `json:"totalChecks" example:"2"`
	PassedChecks     int                `json:"passedChecks" example:"2"`
	FailedChecks     int                `json:"failedChecks" example:"0"`
}
