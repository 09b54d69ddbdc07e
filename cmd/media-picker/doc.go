// Package main provides the media-picker command.
//
// Media Picker lets a user choose photos and videos and normalizes them for
// a host application. Photos are downscaled so their longest edge fits the
// configured maximum and re-encoded as JPEG or PNG; videos are passed through
// by location. Results are returned inline as base64 or as files in the temp
// directory, which the cleanup command purges.
//
// # Commands
//
//   - present: Runs one pick session and prints the result array, or the
//     {code, message} error object with the code as exit status
//   - cleanup: Removes every temp file carrying the owner prefix
//   - serve: Exposes present and cleanup as an HTTP command bridge
//   - version: Prints build information
//
// # HTTP Server
//
// The serve command runs two HTTP servers:
//
//  1. Main Server (default port 8080):
//     - POST /api/{action} command dispatch
//     - Health, liveness and readiness probes
//     - Version information
//
//  2. Metrics Server (default port 9090, optional):
//     - Prometheus metrics endpoint (/metrics)
//     - Health check endpoint (/health)
//
// # Environment Variables
//
// Configuration is read by [media-picker/internal/startup.LoadConfig]:
//
//   - PICKER_TEMP_DIR: Directory for file-backed results
//   - PICKER_OWNER_PREFIX: Prefix of owned temp files
//   - RESIZE_STRATEGY: Photo scaling strategy (default: raw-bitmap)
//   - MAX_DIMENSION: Longest edge of normalized photos (default: 1080)
//   - JPEG_QUALITY: JPEG quality (default: 50)
//   - PORT, METRICS_PORT, METRICS_ENABLED, LOG_HEALTH_CHECKS, STATS_INTERVAL
//   - LOG_LEVEL: Logging level (debug/info/warn/error)
//
// # Graceful Shutdown
//
// On SIGINT or SIGTERM the serve command stops accepting requests, stops the
// metrics collector, shuts down the metrics server, optionally purges temp
// files (--cleanup-on-exit) and releases libvips.
//
// # Build Requirements
//
// The vectorized strategy requires CGO and libvips. The dialog picker uses
// zenity, which needs a desktop session on Linux.
//
// # Related Packages
//
//   - [media-picker/internal/session]: Pick sessions and command dispatch
//   - [media-picker/internal/picker]: Static and dialog pickers
//   - [media-picker/internal/normalizer]: Resize and encode pipeline
//   - [media-picker/internal/handlers]: HTTP command bridge
//   - [media-picker/internal/startup]: Configuration and initialization
package main
