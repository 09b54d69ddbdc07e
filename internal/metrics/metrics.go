package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_picker_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "media_picker_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "media_picker_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Session metrics
var (
	SessionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_picker_sessions_total",
			Help: "Total number of pick sessions by final state",
		},
		[]string{"outcome"}, // "completed", "cancelled", "failed"
	)

	SessionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "media_picker_session_duration_seconds",
			Help:    "Pick session duration in seconds, picker interaction included",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 300},
		},
		[]string{"outcome"},
	)

	SessionErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_picker_session_errors_total",
			Help: "Total number of error responses by wire code",
		},
		[]string{"code"},
	)
)

// Normalization metrics
var (
	ItemsNormalized = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_picker_items_normalized_total",
			Help: "Total number of picked items normalized by kind",
		},
		[]string{"kind"}, // "image", "video"
	)

	ResizeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "media_picker_resize_duration_seconds",
			Help:    "Image resample duration in seconds by strategy",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"strategy"},
	)

	ResizeSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "media_picker_resize_skipped_total",
			Help: "Total number of images already within the maximum dimension",
		},
	)

	ResizeFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_picker_resize_fallbacks_total",
			Help: "Total number of resamples that failed and returned the unscaled source",
		},
		[]string{"strategy"},
	)

	EncodeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "media_picker_encode_duration_seconds",
			Help:    "Encode duration in seconds by kind and representation",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"kind", "representation"}, // representation: "base64", "file", "passthrough"
	)

	EncodedBytes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_picker_encoded_bytes_total",
			Help: "Total number of media bytes encoded before base64 expansion",
		},
		[]string{"kind", "format"},
	)

	EncodeFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_picker_encode_failures_total",
			Help: "Total number of encode failures by kind",
		},
		[]string{"kind"},
	)
)

// Temp file metrics
var (
	TempFilesIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "media_picker_temp_files_issued_total",
			Help: "Total number of temp file paths issued",
		},
	)

	CleanupFilesRemoved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "media_picker_cleanup_files_removed_total",
			Help: "Total number of owned temp files removed by cleanup",
		},
	)

	CleanupFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "media_picker_cleanup_failures_total",
			Help: "Total number of cleanup runs stopped by an I/O error",
		},
	)

	TempFilesCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "media_picker_temp_files",
			Help: "Number of owned files currently in the temp directory",
		},
	)

	TempFilesBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "media_picker_temp_files_bytes",
			Help: "Total size of owned files currently in the temp directory",
		},
	)
)

// Filesystem metrics
var (
	FilesystemOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "media_picker_filesystem_operation_duration_seconds",
			Help:    "Filesystem operation duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"operation"},
	)

	FilesystemOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_picker_filesystem_operation_errors_total",
			Help: "Total number of failed filesystem operations",
		},
		[]string{"operation"},
	)

	FilesystemRetryAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_picker_filesystem_retry_attempts_total",
			Help: "Total number of retries after a stale file handle",
		},
		[]string{"operation"},
	)

	FilesystemRetrySuccess = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_picker_filesystem_retry_success_total",
			Help: "Total number of operations that succeeded after retrying",
		},
		[]string{"operation"},
	)

	FilesystemRetryFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_picker_filesystem_retry_failures_total",
			Help: "Total number of operations that failed after all retries",
		},
		[]string{"operation"},
	)

	FilesystemStaleErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_picker_filesystem_stale_errors_total",
			Help: "Total number of ESTALE errors seen",
		},
		[]string{"operation"},
	)
)

// Application info metric
var (
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "media_picker_app_info",
			Help: "Application information",
		},
		[]string{"version", "commit", "go_version"},
	)
)

// SetAppInfo sets the application info metric
func SetAppInfo(version, commit, goVersion string) {
	AppInfo.WithLabelValues(version, commit, goVersion).Set(1)
}
