package metrics

// InitializeMetrics pre-populates all expected label combinations so that
// every metric is exported from the first Prometheus scrape.
// Call this once at startup after metric registration.
func InitializeMetrics(strategies []string) {
	for _, outcome := range []string{"completed", "cancelled", "failed"} {
		SessionsTotal.WithLabelValues(outcome)
		SessionDuration.WithLabelValues(outcome)
	}

	for _, code := range []string{"1", "2", "3", "10"} {
		SessionErrors.WithLabelValues(code)
	}

	for _, kind := range []string{"image", "video"} {
		ItemsNormalized.WithLabelValues(kind)
		EncodeFailures.WithLabelValues(kind)
	}

	EncodeDuration.WithLabelValues("image", "base64")
	EncodeDuration.WithLabelValues("image", "file")
	EncodeDuration.WithLabelValues("video", "base64")
	EncodeDuration.WithLabelValues("video", "passthrough")

	for _, format := range []string{"jpeg", "png"} {
		EncodedBytes.WithLabelValues("image", format)
	}
	EncodedBytes.WithLabelValues("video", "original")

	for _, s := range strategies {
		ResizeDuration.WithLabelValues(s)
		ResizeFallbacks.WithLabelValues(s)
	}

	for _, op := range []string{"read", "write", "readdir", "remove"} {
		FilesystemOperationDuration.WithLabelValues(op)
		FilesystemOperationErrors.WithLabelValues(op)
		FilesystemRetryAttempts.WithLabelValues(op)
		FilesystemRetrySuccess.WithLabelValues(op)
		FilesystemRetryFailures.WithLabelValues(op)
		FilesystemStaleErrors.WithLabelValues(op)
	}
}
