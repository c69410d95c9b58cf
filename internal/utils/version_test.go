package utils

import (
	"testing"
)

/**
 * Test version comparison tolerating a leading "v" on either side
 */
func TestCompareVersions(t *testing.T) {
	cases := []struct {
		a    string
		b    string
		want int
	}{
		{"v1.2.0", "v1.10.0", -1},
		{"1.10.0", "v1.2.0", 1},
		{"v1.2.0", "1.2.0", 0},
		{"v0.7.6", "v0.7.6", 0},
	}
	for _, c := range cases {
		got, err := CompareVersions(c.a, c.b)
		if err != nil {
			t.Fatalf("CompareVersions('%s', '%s') returned error: %v", c.a, c.b, err)
		}
		if got != c.want {
			t.Errorf("CompareVersions('%s', '%s') = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestCompareVersionsRejectsGarbage(t *testing.T) {
	if _, err := CompareVersions("not-a-version", "v1.0.0"); err == nil {
		t.Error("expected error for unparseable first version")
	}
	if _, err := CompareVersions("v1.0.0", "also garbage"); err == nil {
		t.Error("expected error for unparseable second version")
	}
}

func TestLatestVersion(t *testing.T) {
	if got := LatestVersion([]string{"v1.2.0", "v1.10.0", "v0.9.9"}); got != "v1.10.0" {
		t.Errorf("LatestVersion = '%s', want 'v1.10.0'", got)
	}

	// 原样返回版本号，不丢前缀
	if got := LatestVersion([]string{"0.5.0", "v0.4.0"}); got != "0.5.0" {
		t.Errorf("LatestVersion = '%s', want '0.5.0'", got)
	}

	// 无法解析的条目被跳过
	if got := LatestVersion([]string{"garbage", "v2.0.0"}); got != "v2.0.0" {
		t.Errorf("LatestVersion = '%s', want 'v2.0.0'", got)
	}

	if got := LatestVersion(nil); got != "" {
		t.Errorf("LatestVersion(nil) = '%s', want empty string", got)
	}
}
