package services

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"als-keeper/internal/models"
)

/**
 * Build an in-memory .tar.gz archive holding one language server executable
 * @param {*testing.T} t - Testing framework instance
 * @param {string} binaryName - Entry name inside the archive
 * @returns {[]byte} Archive bytes ready to serve over HTTP
 * @description
 * - The entry is written with mode 0644 so a passing install proves the
 *   installer marked the binary executable itself
 */
func buildServerArchive(t *testing.T, binaryName string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)

	content := []byte("#!/bin/sh\necho arduino-language-server\n")
	hdr := &tar.Header{
		Name:     binaryName,
		Mode:     0644,
		Size:     int64(len(content)),
		Typeflag: tar.TypeReg,
	}
	if err := tw.WriteHeader(hdr); err != nil {
		t.Fatalf("write tar header failed: %v", err)
	}
	if _, err := tw.Write(content); err != nil {
		t.Fatalf("write tar body failed: %v", err)
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("close tar failed: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("close gzip failed: %v", err)
	}
	return buf.Bytes()
}

func assetArchiveServer(t *testing.T, archive []byte, hits *int64) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(hits, 1)
		w.Write(archive)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestEnsureInstalledDownloadsAndCleans(t *testing.T) {
	cfg := testConfig(t, "http://unused")
	ins := NewInstaller(cfg, nil)
	ins.goos = "linux"

	installDir := cfg.LanguageServer.InstallDir
	// 预置一个过期版本目录和一个散落文件
	staleDir := filepath.Join(installDir, "arduino-language-server-v0.9.0")
	if err := os.MkdirAll(staleDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(staleDir, "arduino-language-server"), []byte("old"), 0755); err != nil {
		t.Fatal(err)
	}
	strayFile := filepath.Join(installDir, "notes.txt")
	if err := os.WriteFile(strayFile, []byte("keep me"), 0644); err != nil {
		t.Fatal(err)
	}

	var hits int64
	archive := buildServerArchive(t, "arduino-language-server")
	server := assetArchiveServer(t, archive, &hits)
	asset := &models.ReleaseAsset{
		Name:        "arduino-language-server_v1.2.0_Linux_64bit.tar.gz",
		DownloadURL: server.URL + "/asset.tar.gz",
	}

	path, err := ins.EnsureInstalled(context.Background(), "v1.2.0", asset)
	if err != nil {
		t.Fatalf("EnsureInstalled failed: %v", err)
	}

	want := filepath.Join(installDir, "arduino-language-server-v1.2.0", "arduino-language-server")
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		t.Fatalf("installed binary missing: %v", err)
	}
	if info.Mode().Perm() != 0755 {
		t.Errorf("binary mode = %v, want 0755", info.Mode().Perm())
	}
	if _, err := os.Stat(staleDir); !os.IsNotExist(err) {
		t.Error("stale version directory should be removed")
	}
	if _, err := os.Stat(strayFile); err != nil {
		t.Error("stray files in the install root should be left alone")
	}
	if got := atomic.LoadInt64(&hits); got != 1 {
		t.Errorf("downloads = %d, want 1", got)
	}
}

func TestEnsureInstalledIdempotent(t *testing.T) {
	cfg := testConfig(t, "http://unused")
	ins := NewInstaller(cfg, nil)
	ins.goos = "linux"

	var hits int64
	archive := buildServerArchive(t, "arduino-language-server")
	server := assetArchiveServer(t, archive, &hits)
	asset := &models.ReleaseAsset{
		Name:        "arduino-language-server_v1.2.0_Linux_64bit.tar.gz",
		DownloadURL: server.URL + "/asset.tar.gz",
	}

	first, err := ins.EnsureInstalled(context.Background(), "v1.2.0", asset)
	if err != nil {
		t.Fatalf("first EnsureInstalled failed: %v", err)
	}
	// 第二次调用只做路径计算，不再下载
	second, err := ins.EnsureInstalled(context.Background(), "v1.2.0", asset)
	if err != nil {
		t.Fatalf("second EnsureInstalled failed: %v", err)
	}
	if first != second {
		t.Errorf("paths differ: %q vs %q", first, second)
	}
	if got := atomic.LoadInt64(&hits); got != 1 {
		t.Errorf("downloads = %d, want 1", got)
	}
}

func TestInstalledVersions(t *testing.T) {
	cfg := testConfig(t, "http://unused")
	ins := NewInstaller(cfg, nil)
	ins.goos = "linux"

	installDir := cfg.LanguageServer.InstallDir
	withBinary := filepath.Join(installDir, "arduino-language-server-v1.0.0")
	if err := os.MkdirAll(withBinary, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(withBinary, "arduino-language-server"), []byte("bin"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(installDir, "arduino-language-server-v1.2.0"), 0755); err != nil {
		t.Fatal(err)
	}
	// 前缀不匹配的目录和散落文件都不算版本
	if err := os.MkdirAll(filepath.Join(installDir, "other-dir"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(installDir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	versions, err := ins.InstalledVersions()
	if err != nil {
		t.Fatalf("InstalledVersions failed: %v", err)
	}
	if len(versions) != 2 {
		t.Fatalf("len(versions) = %d, want 2", len(versions))
	}

	byVersion := map[string]models.InstalledVersion{}
	for _, v := range versions {
		byVersion[v.Version] = v
	}
	if v := byVersion["v1.0.0"]; !v.Binary || v.Latest {
		t.Errorf("v1.0.0 = %+v, want Binary=true Latest=false", v)
	}
	if v := byVersion["v1.2.0"]; v.Binary || !v.Latest {
		t.Errorf("v1.2.0 = %+v, want Binary=false Latest=true", v)
	}
}

func TestInstalledVersionsMissingRoot(t *testing.T) {
	cfg := testConfig(t, "http://unused")
	cfg.LanguageServer.InstallDir = filepath.Join(t.TempDir(), "missing")
	ins := NewInstaller(cfg, nil)

	versions, err := ins.InstalledVersions()
	if err != nil {
		t.Fatalf("InstalledVersions failed: %v", err)
	}
	if versions == nil || len(versions) != 0 {
		t.Errorf("versions = %v, want an empty list", versions)
	}
}

func TestRemove(t *testing.T) {
	cfg := testConfig(t, "http://unused")
	ins := NewInstaller(cfg, nil)

	if err := ins.Remove("v1.0.0"); !errors.Is(err, ErrVersionNotFound) {
		t.Errorf("Remove = %v, want ErrVersionNotFound", err)
	}

	dir := ins.VersionDir("v1.0.0")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := ins.Remove("v1.0.0"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("version directory should be removed")
	}
}

func TestCleanStalePropagatesListError(t *testing.T) {
	cfg := testConfig(t, "http://unused")
	cfg.LanguageServer.InstallDir = filepath.Join(t.TempDir(), "missing")
	ins := NewInstaller(cfg, nil)

	if err := ins.CleanStale("v1.2.0"); err == nil {
		t.Error("CleanStale should fail when the install root cannot be listed")
	}
}
