package utils

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

/**
 * Download a .tar.gz archive and extract it into destDir in one operation
 * @param {context.Context} ctx - Context for request cancellation and timeout
 * @param {string} urlStr - Archive download URL
 * @param {map} headers - Extra request headers, may be nil
 * @param {string} destDir - Directory receiving the extracted entries, created if missing
 * @returns {error} Returns error if download or extraction fails, nil on success
 * @description
 * - Downloads to a temporary file first so a broken transfer never leaves
 *   a half-written archive inside destDir
 * - The temporary file is removed in every outcome
 */
func DownloadArchive(ctx context.Context, urlStr string, headers map[string]string, destDir string) error {
	tmpDir, err := os.MkdirTemp("", "als-keeper-download-")
	if err != nil {
		return fmt.Errorf("DownloadArchive: create temp dir failed: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	archivePath := filepath.Join(tmpDir, "archive.tar.gz")
	if err := GetFile(ctx, urlStr, headers, archivePath); err != nil {
		return err
	}
	if err := ExtractTarGz(archivePath, destDir); err != nil {
		return fmt.Errorf("DownloadArchive('%s') failed: %v", urlStr, err)
	}
	return nil
}

/**
 * Extract a gzip-compressed tar archive into destDir
 * @param {string} archivePath - Path of the .tar.gz file
 * @param {string} destDir - Destination directory, created if missing
 * @returns {error} Returns error if extraction fails, nil on success
 * @description
 * - Regular files and directories are extracted; other entry types are skipped
 * - Entries escaping destDir ("../" tricks) abort the extraction
 */
func ExtractTarGz(archivePath, destDir string) error {
	f, err := os.Open(archivePath)
	if err != nil {
		return fmt.Errorf("open archive '%s' failed: %v", archivePath, err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return fmt.Errorf("read gzip stream of '%s' failed: %v", archivePath, err)
	}
	defer gz.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("MkdirAll('%s') failed: %v", destDir, err)
	}

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read tar entry failed: %v", err)
		}
		target, err := sanitizeArchivePath(destDir, hdr.Name)
		if err != nil {
			return err
		}
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("MkdirAll('%s') failed: %v", target, err)
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return fmt.Errorf("MkdirAll('%s') failed: %v", filepath.Dir(target), err)
			}
			out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, os.FileMode(hdr.Mode&0777))
			if err != nil {
				return fmt.Errorf("create '%s' failed: %v", target, err)
			}
			if _, err := io.Copy(out, tr); err != nil {
				out.Close()
				return fmt.Errorf("write '%s' failed: %v", target, err)
			}
			out.Close()
		}
	}
	return nil
}

/**
 * Resolve an archive entry name against destDir, rejecting path escapes
 */
func sanitizeArchivePath(destDir, name string) (string, error) {
	target := filepath.Join(destDir, name)
	if target != filepath.Clean(destDir) &&
		!strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry '%s' escapes destination directory", name)
	}
	return target, nil
}
