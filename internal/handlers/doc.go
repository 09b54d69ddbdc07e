// Package handlers exposes the picker plugin over HTTP.
//
// It includes handlers for:
//   - Command dispatch (POST /api/{action}) for present and cleanup
//   - Health, liveness and readiness probes
//   - Version information
//   - The Prometheus metrics endpoint
package handlers
