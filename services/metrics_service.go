package services

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "als_http_requests_total",
			Help: "Total HTTP requests received",
		},
		[]string{"path"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "als_http_request_duration_seconds",
			Help:    "Duration of HTTP request handling",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)

	errorCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "als_http_request_errors_total",
			Help: "Total HTTP requests answered with status >= 400",
		},
		[]string{"path"},
	)

	resolutionCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "als_resolutions_total",
			Help: "Total binary resolutions by outcome (override/path/cache/download/failure)",
		},
		[]string{"outcome"},
	)

	feedQueryCount = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "als_feed_queries_total",
			Help: "Total release feed queries",
		},
	)

	downloadCount = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "als_downloads_total",
			Help: "Total language server archive downloads",
		},
	)

	downloadDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "als_download_duration_seconds",
			Help:    "Duration of archive download and extraction",
			Buckets: prometheus.DefBuckets,
		},
	)

	cleanupFailureCount = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "als_cleanup_failures_total",
			Help: "Total stale version directories that could not be removed",
		},
	)
)

func init() {
	prometheus.MustRegister(requestCount)
	prometheus.MustRegister(requestDuration)
	prometheus.MustRegister(errorCount)
	prometheus.MustRegister(resolutionCount)
	prometheus.MustRegister(feedQueryCount)
	prometheus.MustRegister(downloadCount)
	prometheus.MustRegister(downloadDuration)
	prometheus.MustRegister(cleanupFailureCount)
}

// 本地计数器镜像，健康检查接口直接读取
var (
	totalRequests    int64
	totalErrors      int64
	totalResolutions int64
	totalDownloads   int64
)

func IncrementRequestCount(path string) {
	requestCount.WithLabelValues(path).Inc()
	atomic.AddInt64(&totalRequests, 1)
}

func RecordRequestDuration(path string, seconds float64) {
	requestDuration.WithLabelValues(path).Observe(seconds)
}

func IncrementErrorCount(path string) {
	errorCount.WithLabelValues(path).Inc()
	atomic.AddInt64(&totalErrors, 1)
}

/**
 * Count one finished resolution
 * @param {string} outcome - Which precedence step produced the result
 * (override/path/cache/download), or "failure"
 */
func IncrementResolutionCount(outcome string) {
	resolutionCount.WithLabelValues(outcome).Inc()
	atomic.AddInt64(&totalResolutions, 1)
}

func IncrementFeedQueryCount() {
	feedQueryCount.Inc()
}

func IncrementDownloadCount() {
	downloadCount.Inc()
	atomic.AddInt64(&totalDownloads, 1)
}

func ObserveDownloadDuration(seconds float64) {
	downloadDuration.Observe(seconds)
}

func IncrementCleanupFailureCount() {
	cleanupFailureCount.Inc()
}

func GetTotalRequestCount() int64 {
	return atomic.LoadInt64(&totalRequests)
}

func GetTotalErrorCount() int64 {
	return atomic.LoadInt64(&totalErrors)
}

func GetTotalResolutionCount() int64 {
	return atomic.LoadInt64(&totalResolutions)
}

func GetTotalDownloadCount() int64 {
	return atomic.LoadInt64(&totalDownloads)
}
