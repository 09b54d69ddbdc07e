// Package startup handles application initialization, configuration loading,
// and startup/shutdown logging.
//
// # Configuration
//
// All configuration is loaded from environment variables via [LoadConfig]:
//
//   - PICKER_TEMP_DIR: Directory for file-backed results (default: os.TempDir())
//   - PICKER_OWNER_PREFIX: Prefix of every temp file this instance creates
//     (default: advanced_image_picker_)
//   - RESIZE_STRATEGY: direct-draw, filter-graph, raw-bitmap, thumbnail or
//     vectorized (default: raw-bitmap)
//   - MAX_DIMENSION: Longest edge of normalized photos (default: 1080)
//   - JPEG_QUALITY: Quality of JPEG results, 1-100 (default: 50)
//   - PORT: HTTP command bridge port (default: 8080)
//   - METRICS_PORT: Prometheus metrics server port (default: 9090)
//   - METRICS_ENABLED: Enable or disable metrics server (default: true)
//   - LOG_HEALTH_CHECKS: Log health check requests (default: true)
//   - STATS_INTERVAL: Temp directory statistics interval (default: 1m)
//   - LOG_LEVEL: Logging level - debug, info, warn, error (default: info)
//
// Invalid values are logged and replaced by their defaults. The temp
// directory is created if missing and must be writable.
//
// # Build Information
//
// Build-time variables are injected via ldflags and exposed via [GetBuildInfo].
//
// # Example Usage
//
//	config, err := startup.LoadConfig(false)
//	if err != nil {
//	    logging.Fatal("Configuration error: %v", err)
//	}
//
//	startup.LogServerStarted(startup.ServerConfig{
//	    Port:            config.Port,
//	    MetricsPort:     config.MetricsPort,
//	    MetricsEnabled:  config.MetricsEnabled,
//	    StartupDuration: time.Since(startTime),
//	})
package startup
