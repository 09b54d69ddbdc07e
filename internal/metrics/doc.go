// Package metrics provides Prometheus instrumentation for the media picker.
//
// All metrics are prefixed with "media_picker_" to avoid naming collisions
// with other applications.
//
// # Metric Categories
//
// ## Session Metrics
//
//   - SessionsTotal: Counter of pick sessions by outcome (completed, cancelled, failed)
//   - SessionDuration: Histogram of session duration, picker interaction included
//   - SessionErrors: Counter of error responses by wire code
//
// ## Normalization Metrics
//
//   - ItemsNormalized: Counter of items normalized by kind
//   - ResizeDuration: Histogram of resample time by strategy
//   - ResizeSkipped: Counter of images already within the maximum dimension
//   - ResizeFallbacks: Counter of failed resamples that returned the source
//   - EncodeDuration: Histogram of encode time by kind and representation
//   - EncodedBytes: Counter of encoded bytes by kind and format
//   - EncodeFailures: Counter of encode failures by kind
//
// ## Temp File Metrics
//
//   - TempFilesIssued: Counter of issued temp paths
//   - CleanupFilesRemoved: Counter of files removed by cleanup
//   - CleanupFailures: Counter of cleanup runs stopped by an I/O error
//   - TempFilesCount / TempFilesBytes: Gauges refreshed by the Collector
//
// ## Filesystem Metrics
//
// Recorded through the filesystem.Observer implementation returned by
// NewFilesystemObserver, which keeps the filesystem package free of a
// Prometheus dependency.
//
// ## HTTP Metrics
//
// Recorded by the middleware package for the serve host.
package metrics
