package services

import (
	"context"
	"testing"
	"time"
)

func TestServerCheckHealthy(t *testing.T) {
	fx := newFeedFixture(t, "v1.2.0")
	cfg := testConfig(t, fx.server.URL)
	r := newTestResolver(t, cfg, &recordingReporter{})
	if _, _, err := r.Acquire(context.Background(), ""); err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}

	srv := NewServer(cfg, r, r.installer, r.feed)
	response := srv.Check(context.Background())

	if response.OverallStatus != "healthy" {
		t.Errorf("OverallStatus = %q, want healthy (problems: %v)", response.OverallStatus, response.Problems)
	}
	if response.FailedChecks != 0 {
		t.Errorf("FailedChecks = %d, want 0", response.FailedChecks)
	}
	if response.LatestVersion != "v1.2.0" {
		t.Errorf("LatestVersion = %q, want v1.2.0", response.LatestVersion)
	}
	if response.UpgradeNeeded {
		t.Error("UpgradeNeeded = true, want false with the latest version installed")
	}
	if len(response.Versions) != 1 {
		t.Errorf("len(Versions) = %d, want 1", len(response.Versions))
	}
	if response.CachedBinaryPath == "" {
		t.Error("CachedBinaryPath should be set after an acquisition")
	}
}

func TestServerCheckFlagsUpgrade(t *testing.T) {
	// feed上的最新版本是v1.3.0，本地固定安装了v1.2.0
	fx := newFeedFixture(t, "v1.3.0")
	cfg := testConfig(t, fx.server.URL)
	r := newTestResolver(t, cfg, &recordingReporter{})
	if _, _, err := r.Acquire(context.Background(), "v1.2.0"); err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}

	srv := NewServer(cfg, r, r.installer, r.feed)
	response := srv.Check(context.Background())

	if response.LatestVersion != "v1.3.0" {
		t.Errorf("LatestVersion = %q, want v1.3.0", response.LatestVersion)
	}
	if !response.UpgradeNeeded {
		t.Error("UpgradeNeeded = false, want true with an older version installed")
	}
}

func TestGetHealthz(t *testing.T) {
	cfg := testConfig(t, "http://unused")
	r := newTestResolver(t, cfg, &recordingReporter{})
	srv := NewServer(cfg, r, r.installer, r.feed)

	health := srv.GetHealthz()
	if health.Status != "UP" {
		t.Errorf("Status = %q, want UP", health.Status)
	}
	if _, err := time.Parse(time.RFC3339, health.StartTime); err != nil {
		t.Errorf("StartTime %q is not RFC3339: %v", health.StartTime, err)
	}
	if health.Uptime == "" {
		t.Error("Uptime should be set")
	}
	if health.Metrics.InstalledVersions != 0 {
		t.Errorf("InstalledVersions = %d, want 0", health.Metrics.InstalledVersions)
	}
}
