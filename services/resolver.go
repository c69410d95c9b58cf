package services

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"sync"

	"als-keeper/internal/config"
	"als-keeper/internal/logger"
	"als-keeper/internal/models"
)

/**
 * Resolver locates a runnable language server binary, acquiring one from the
 * release feed when nothing usable is found locally
 */
type Resolver struct {
	mu        sync.Mutex
	name      string
	feed      *ReleaseService
	installer *Installer
	reporter  StatusReporter
	opts      models.ReleaseOptions

	// lookPath and the platform identifiers are swappable for tests.
	lookPath func(file string) (string, error)
	goos     string
	goarch   string

	// cachedBinaryPath remembers the last acquisition of this process.
	// It is only trusted after a fresh stat; a stale entry falls through
	// to a new acquisition and is never repaired in place.
	cachedBinaryPath string
}

var resolver *Resolver

/**
 * Get resolver singleton bound to the loaded configuration
 * @returns {Resolver} Returns resolver instance
 */
func GetResolver() *Resolver {
	if resolver != nil {
		return resolver
	}
	resolver = NewResolver(&config.Config, GetReleaseService(), GetInstaller(), nil)
	return resolver
}

/**
 * Create new resolver instance
 * @param {AppConfig} cfg - Application configuration
 * @param {ReleaseService} feed - Release feed client
 * @param {Installer} installer - Version directory manager
 * @param {StatusReporter} reporter - Progress sink; nil selects the log-backed default
 * @returns {Resolver} Returns new resolver instance
 */
func NewResolver(cfg *config.AppConfig, feed *ReleaseService, installer *Installer, reporter StatusReporter) *Resolver {
	if reporter == nil {
		reporter = NewLogStatusReporter(cfg.LanguageServer.Name)
	}
	return &Resolver{
		name:      cfg.LanguageServer.Name,
		feed:      feed,
		installer: installer,
		reporter:  reporter,
		opts: models.ReleaseOptions{
			RequireAssets: true,
			PreRelease:    cfg.Release.PreRelease,
		},
		lookPath: exec.LookPath,
		goos:     runtime.GOOS,
		goarch:   runtime.GOARCH,
	}
}

/**
 * Resolve a runnable language server binary path
 * @param {context.Context} ctx - Context for feed and download cancellation
 * @param {*models.LanguageServerSettings} settings - Per-project settings, may be nil
 * @returns {string} Executable path, {error} when acquisition fails
 * @description
 * - Precedence, each step short-circuiting on success:
 *   1. settings binary.path is returned verbatim, with no checks of any kind
 *   2. a PATH hit for the canonical executable name wins
 *   3. the cached path from an earlier acquisition is returned when it still
 *      stats as a regular file
 *   4. otherwise the latest eligible release is acquired and its executable
 *      path cached and returned
 * - The cache is refreshed even when the installer found the version already
 *   on disk, so a restarted PATH-less host converges without re-downloading
 */
func (r *Resolver) Resolve(ctx context.Context, settings *models.LanguageServerSettings) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if settings != nil && settings.Binary != nil && settings.Binary.Path != "" {
		IncrementResolutionCount("override")
		return settings.Binary.Path, nil
	}

	if path, err := r.lookPath(r.name); err == nil {
		IncrementResolutionCount("path")
		return path, nil
	}

	if r.cachedBinaryPath != "" {
		if info, err := os.Stat(r.cachedBinaryPath); err == nil && info.Mode().IsRegular() {
			IncrementResolutionCount("cache")
			return r.cachedBinaryPath, nil
		}
		logger.Debugf("cached path '%s' is gone, acquiring again", r.cachedBinaryPath)
	}

	_, binaryPath, err := r.acquire(ctx, "")
	if err != nil {
		IncrementResolutionCount("failure")
		return "", err
	}
	IncrementResolutionCount("download")
	return binaryPath, nil
}

/**
 * Force an acquisition pass regardless of PATH or cache state
 * @param {context.Context} ctx - Context for feed and download cancellation
 * @param {string} tag - Version identifier to pin, "" for the latest release
 * @returns {string} Installed version identifier
 * @returns {string} Executable path, {error} when the feed query, asset
 * selection or installation fails
 */
func (r *Resolver) Acquire(ctx context.Context, tag string) (string, string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.acquire(ctx, tag)
}

func (r *Resolver) acquire(ctx context.Context, tag string) (string, string, error) {
	r.reporter.ReportStatus(StatusCheckingForUpdate)

	var release *models.ReleaseInfo
	var err error
	if tag != "" {
		release, err = r.feed.ReleaseByTag(ctx, tag)
	} else {
		release, err = r.feed.LatestRelease(ctx, r.opts)
	}
	if err != nil {
		return "", "", err
	}

	asset, err := r.feed.SelectAsset(release, r.name, r.goos, r.goarch)
	if err != nil {
		return "", "", err
	}

	binaryPath, err := r.installer.EnsureInstalled(ctx, release.Version, asset)
	if err != nil {
		return "", "", err
	}

	r.cachedBinaryPath = binaryPath
	return release.Version, binaryPath, nil
}

/**
 * Get the path remembered from the last successful acquisition
 * @returns {string} Cached executable path, "" before the first acquisition
 */
func (r *Resolver) CachedBinaryPath() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cachedBinaryPath
}
