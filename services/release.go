package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"als-keeper/internal/config"
	"als-keeper/internal/models"
	"als-keeper/internal/utils"
)

// One feed page is plenty: the newest eligible release is almost always
// within the first handful of entries.
const releasePageSize = 30

var (
	osLabels = map[string]string{
		"darwin":  "macOS",
		"linux":   "Linux",
		"windows": "Windows",
	}
	archLabels = map[string]string{
		"arm64": "ARM64",
		"386":   "32bit",
		"amd64": "64bit",
	}
)

/**
 * Release service queries the upstream release feed (GitHub REST) and picks
 * the downloadable asset matching the target platform
 */
type ReleaseService struct {
	repository string
	apiBase    string
	tokenEnv   string
	getenv     func(string) string
}

var releaseService *ReleaseService

/**
 * Get release service singleton bound to the loaded configuration
 * @returns {ReleaseService} Returns release service instance
 */
func GetReleaseService() *ReleaseService {
	if releaseService != nil {
		return releaseService
	}
	releaseService = NewReleaseService(&config.Config)
	return releaseService
}

/**
 * Create new release service instance
 * @param {AppConfig} cfg - Application configuration carrying the release section
 * @returns {ReleaseService} Returns new release service instance
 */
func NewReleaseService(cfg *config.AppConfig) *ReleaseService {
	return &ReleaseService{
		repository: cfg.Release.Repository,
		apiBase:    cfg.Release.ApiBase,
		tokenEnv:   cfg.Release.TokenEnv,
		getenv:     os.Getenv,
	}
}

func (rs *ReleaseService) requestHeaders() map[string]string {
	headers := map[string]string{
		"Accept":     "application/vnd.github+json",
		"User-Agent": "als-keeper",
	}
	if rs.tokenEnv != "" {
		if token := rs.getenv(rs.tokenEnv); token != "" {
			headers["Authorization"] = "Bearer " + token
		}
	}
	return headers
}

/**
 * Fetch the newest release satisfying the given options
 * @param {context.Context} ctx - Context for request cancellation and timeout
 * @param {ReleaseOptions} opts - Eligibility filters for the walk
 * @returns {*models.ReleaseInfo} Newest eligible release, {error} when the feed
 * fails or nothing qualifies
 * @description
 * - Walks the feed newest-first and returns the first entry that is not a
 *   draft, is not a prerelease (unless opts.PreRelease), and carries at least
 *   one asset (when opts.RequireAssets)
 * - No match within the page is an error naming the repository
 */
func (rs *ReleaseService) LatestRelease(ctx context.Context, opts models.ReleaseOptions) (*models.ReleaseInfo, error) {
	IncrementFeedQueryCount()
	url := fmt.Sprintf("%s/repos/%s/releases?per_page=%d", rs.apiBase, rs.repository, releasePageSize)
	data, err := utils.GetBytes(ctx, url, rs.requestHeaders())
	if err != nil {
		return nil, fmt.Errorf("query releases of '%s' failed: %v", rs.repository, err)
	}
	var releases []models.ReleaseInfo
	if err := json.Unmarshal(data, &releases); err != nil {
		return nil, fmt.Errorf("parse releases of '%s' failed: %v", rs.repository, err)
	}
	for i := range releases {
		release := &releases[i]
		if release.Draft {
			continue
		}
		if release.PreRelease && !opts.PreRelease {
			continue
		}
		if opts.RequireAssets && len(release.Assets) == 0 {
			continue
		}
		return release, nil
	}
	return nil, fmt.Errorf("no matching release found for '%s'", rs.repository)
}

/**
 * Fetch one release pinned by its tag
 * @param {context.Context} ctx - Context for request cancellation and timeout
 * @param {string} tag - Version identifier, e.g. "v1.2.0"
 * @returns {*models.ReleaseInfo} The pinned release, {error} on feed failure or unknown tag
 */
func (rs *ReleaseService) ReleaseByTag(ctx context.Context, tag string) (*models.ReleaseInfo, error) {
	IncrementFeedQueryCount()
	url := fmt.Sprintf("%s/repos/%s/releases/tags/%s", rs.apiBase, rs.repository, tag)
	data, err := utils.GetBytes(ctx, url, rs.requestHeaders())
	if err != nil {
		return nil, fmt.Errorf("query release '%s' of '%s' failed: %v", tag, rs.repository, err)
	}
	var release models.ReleaseInfo
	if err := json.Unmarshal(data, &release); err != nil {
		return nil, fmt.Errorf("parse release '%s' of '%s' failed: %v", tag, rs.repository, err)
	}
	return &release, nil
}

/**
 * Compute the exact asset file name published for a platform
 * @param {string} name - Base name, e.g. "arduino-language-server"
 * @param {string} version - Version identifier as published, keeps its leading "v"
 * @param {string} goos - Target operating system (GOOS value)
 * @param {string} goarch - Target architecture (GOARCH value)
 * @returns {string} Asset name such as "arduino-language-server_v1.2.0_Linux_64bit.tar.gz",
 * {error} when the platform has no published label
 * @description
 * - The label tables mirror the upstream naming convention; a convention
 *   change upstream means editing the tables
 */
func AssetName(name, version, goos, goarch string) (string, error) {
	osLabel, ok := osLabels[goos]
	if !ok {
		return "", fmt.Errorf("unsupported operating system '%s'", goos)
	}
	archLabel, ok := archLabels[goarch]
	if !ok {
		return "", fmt.Errorf("unsupported architecture '%s'", goarch)
	}
	return fmt.Sprintf("%s_%s_%s_%s.tar.gz", name, version, osLabel, archLabel), nil
}

/**
 * Pick the release asset whose name matches the target platform exactly
 * @param {*models.ReleaseInfo} release - Release whose assets are searched
 * @param {string} name - Language server base name
 * @param {string} goos - Target operating system (GOOS value)
 * @param {string} goarch - Target architecture (GOARCH value)
 * @returns {*models.ReleaseAsset} The matching asset, {error} when no asset carries the computed name
 * @description
 * - Exact string equality only, no fuzzy matching
 * - A missing asset is a hard stop and is never retried
 */
func (rs *ReleaseService) SelectAsset(release *models.ReleaseInfo, name, goos, goarch string) (*models.ReleaseAsset, error) {
	want, err := AssetName(name, release.Version, goos, goarch)
	if err != nil {
		return nil, err
	}
	for i := range release.Assets {
		if release.Assets[i].Name == want {
			return &release.Assets[i], nil
		}
	}
	return nil, fmt.Errorf("no asset found matching %q", want)
}
