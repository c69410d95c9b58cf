package utils

import (
	"fmt"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

/**
 * Compare two version strings, tolerating a leading "v"
 * @param {string} a - First version (e.g. "v1.2.0")
 * @param {string} b - Second version (e.g. "1.10.0")
 * @returns {int} -1 if a is older, 0 if equal, 1 if a is newer
 * @example
 * ret, err := CompareVersions("v1.2.0", "v1.10.0")  // returns -1
 */
func CompareVersions(a, b string) (int, error) {
	va, err := goversion.NewVersion(strings.TrimPrefix(a, "v"))
	if err != nil {
		return 0, fmt.Errorf("parse version '%s' failed: %v", a, err)
	}
	vb, err := goversion.NewVersion(strings.TrimPrefix(b, "v"))
	if err != nil {
		return 0, fmt.Errorf("parse version '%s' failed: %v", b, err)
	}
	return va.Compare(vb), nil
}

/**
 * Pick the newest version from a list
 * @param {[]string} versions - Candidate version strings
 * @returns {string} The newest parseable version in its original spelling, "" when none parses
 */
func LatestVersion(versions []string) string {
	latest := ""
	var latestParsed *goversion.Version
	for _, raw := range versions {
		parsed, err := goversion.NewVersion(strings.TrimPrefix(raw, "v"))
		if err != nil {
			continue
		}
		if latestParsed == nil || parsed.GreaterThan(latestParsed) {
			latest = raw
			latestParsed = parsed
		}
	}
	return latest
}
