// Package middleware provides HTTP middleware for the picker command bridge.
//
// It includes:
//   - Request logging in W3C Extended Log Format, written through zerolog
//   - Prometheus request metrics labelled by route template
//   - Configurable filtering for health checks
package middleware
