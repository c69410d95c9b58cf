package models

/**
 * Release feed query options
 * @property {bool} require_assets - Only consider releases carrying at least one asset
 * @property {bool} pre_release - Allow prerelease versions to match
 */
type ReleaseOptions struct {
	RequireAssets bool `json:"require_assets"`
	PreRelease    bool `json:"pre_release"`
}

/**
 * Single downloadable file attached to a release
 * @property {string} name - Asset file name, unique within one release
 * @property {string} browser_download_url - Direct download URL
 */
type ReleaseAsset struct {
	Name        string `json:"name"`
	DownloadURL string `json:"browser_download_url"`
}

/**
 * One release published on the feed (GitHub REST shape)
 * @property {string} tag_name - Version identifier, keeps its leading "v"
 * @property {bool} prerelease - Marked as prerelease upstream
 * @property {bool} draft - Unpublished draft, never eligible
 * @property {[]ReleaseAsset} assets - Ordered asset list
 */
type ReleaseInfo struct {
	Version    string         `json:"tag_name"`
	PreRelease bool           `json:"prerelease"`
	Draft      bool           `json:"draft"`
	Assets     []ReleaseAsset `json:"assets"`
}
