package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"als-keeper/internal/config"
	"als-keeper/internal/logger"
	"als-keeper/internal/models"
	"als-keeper/internal/utils"
)

var ErrVersionNotFound = errors.New("version not found")

/**
 * Installer owns the install root: one directory per language server version,
 * exactly one of which is current
 */
type Installer struct {
	name       string
	installDir string
	goos       string
	reporter   StatusReporter

	// download is swappable so tests can install from a local feed.
	download func(ctx context.Context, urlStr string, headers map[string]string, destDir string) error
}

var installer *Installer

/**
 * Get installer singleton bound to the loaded configuration
 * @returns {Installer} Returns installer instance
 */
func GetInstaller() *Installer {
	if installer != nil {
		return installer
	}
	installer = NewInstaller(&config.Config, nil)
	return installer
}

/**
 * Create new installer instance
 * @param {AppConfig} cfg - Application configuration carrying the language server section
 * @param {StatusReporter} reporter - Progress sink; nil selects the log-backed default
 * @returns {Installer} Returns new installer instance
 */
func NewInstaller(cfg *config.AppConfig, reporter StatusReporter) *Installer {
	if reporter == nil {
		reporter = NewLogStatusReporter(cfg.LanguageServer.Name)
	}
	return &Installer{
		name:       cfg.LanguageServer.Name,
		installDir: cfg.LanguageServer.InstallDir,
		goos:       runtime.GOOS,
		reporter:   reporter,
		download:   utils.DownloadArchive,
	}
}

/**
 * Compute the directory holding one installed version
 * @param {string} version - Version identifier as published, keeps its leading "v"
 * @returns {string} Path like <install root>/arduino-language-server-v1.2.0
 */
func (ins *Installer) VersionDir(version string) string {
	return filepath.Join(ins.installDir, fmt.Sprintf("%s-%s", ins.name, version))
}

/**
 * Compute the executable path inside a version directory
 * @param {string} version - Version identifier
 * @returns {string} Executable path; carries an .exe suffix on Windows
 */
func (ins *Installer) BinaryPath(version string) string {
	binary := ins.name
	if ins.goos == "windows" {
		binary += ".exe"
	}
	return filepath.Join(ins.VersionDir(version), binary)
}

/**
 * Ensure one version of the language server is installed and return its executable path
 * @param {context.Context} ctx - Context for download cancellation and timeout
 * @param {string} version - Version identifier to install
 * @param {*models.ReleaseAsset} asset - Archive asset selected for the target platform
 * @returns {string} Executable path inside the version directory, {error} on download,
 * extraction, listing or chmod failure
 * @description
 * - When the executable already exists as a regular file the call is a pure
 *   path computation: no download, no cleanup, no permission changes
 * - A fresh install downloads and extracts the archive into the version
 *   directory, prunes every other version directory, then marks the binary
 *   executable
 * - Pruning failures are logged and swallowed; listing failures propagate
 */
func (ins *Installer) EnsureInstalled(ctx context.Context, version string, asset *models.ReleaseAsset) (string, error) {
	binaryPath := ins.BinaryPath(version)
	if info, err := os.Stat(binaryPath); err == nil && info.Mode().IsRegular() {
		return binaryPath, nil
	}

	ins.reporter.ReportStatus(StatusDownloading)
	IncrementDownloadCount()
	start := time.Now()
	if err := ins.download(ctx, asset.DownloadURL, nil, ins.VersionDir(version)); err != nil {
		return "", fmt.Errorf("download '%s' failed: %v", asset.Name, err)
	}
	ObserveDownloadDuration(time.Since(start).Seconds())

	if err := ins.CleanStale(version); err != nil {
		return "", err
	}
	if err := os.Chmod(binaryPath, 0755); err != nil {
		return "", fmt.Errorf("chmod '%s' failed: %v", binaryPath, err)
	}
	return binaryPath, nil
}

/**
 * Remove every version directory except the one passed in
 * @param {string} version - Version identifier to keep
 * @returns {error} Returns error if the install root cannot be listed or an
 * entry's type cannot be read, nil otherwise
 * @description
 * - Only directories are removed; stray files in the install root are left alone
 * - Removal failures are logged and swallowed so one stuck directory never
 *   fails an otherwise complete install
 */
func (ins *Installer) CleanStale(version string) error {
	keep := fmt.Sprintf("%s-%s", ins.name, version)
	entries, err := os.ReadDir(ins.installDir)
	if err != nil {
		return fmt.Errorf("list '%s' failed: %v", ins.installDir, err)
	}
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			return fmt.Errorf("inspect '%s' failed: %v", entry.Name(), err)
		}
		if !info.IsDir() || entry.Name() == keep {
			continue
		}
		stale := filepath.Join(ins.installDir, entry.Name())
		if err := os.RemoveAll(stale); err != nil {
			IncrementCleanupFailureCount()
			logger.Warnf("remove stale version '%s' failed: %v", stale, err)
		}
	}
	return nil
}

/**
 * List installed version directories under the install root
 * @returns {[]models.InstalledVersion} One entry per version directory, newest
 * marked Latest, {error} when the install root cannot be listed
 * @description
 * - A missing install root lists as empty, not as an error
 */
func (ins *Installer) InstalledVersions() ([]models.InstalledVersion, error) {
	entries, err := os.ReadDir(ins.installDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.InstalledVersion{}, nil
		}
		return nil, fmt.Errorf("list '%s' failed: %v", ins.installDir, err)
	}

	prefix := ins.name + "-"
	versions := make([]models.InstalledVersion, 0, len(entries))
	tags := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		version := strings.TrimPrefix(entry.Name(), prefix)
		hasBinary := false
		if info, err := os.Stat(ins.BinaryPath(version)); err == nil && info.Mode().IsRegular() {
			hasBinary = true
		}
		versions = append(versions, models.InstalledVersion{
			Version: version,
			Path:    filepath.Join(ins.installDir, entry.Name()),
			Binary:  hasBinary,
		})
		tags = append(tags, version)
	}

	if latest := utils.LatestVersion(tags); latest != "" {
		for i := range versions {
			if versions[i].Version == latest {
				versions[i].Latest = true
			}
		}
	}
	return versions, nil
}

/**
 * Remove one installed version directory
 * @param {string} version - Version identifier to remove
 * @returns {error} Returns ErrVersionNotFound when the directory does not
 * exist, removal error otherwise
 */
func (ins *Installer) Remove(version string) error {
	dir := ins.VersionDir(version)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return ErrVersionNotFound
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("remove '%s' failed: %v", dir, err)
	}
	return nil
}
