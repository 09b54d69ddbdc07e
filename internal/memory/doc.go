// Package memory configures Go's runtime memory limit in containerized
// environments.
//
// Unlike GOMAXPROCS, which Go derives from cgroup CPU limits, GOMEMLIMIT must
// be configured explicitly. The serve command calls [ConfigureFromEnv] before
// any photo is decoded:
//
//   - GOMEMLIMIT: Standard Go environment variable. If set, takes precedence
//     over all other configuration.
//   - MEMORY_LIMIT: Container memory limit in bytes, typically set via the
//     Kubernetes Downward API.
//   - MEMORY_RATIO: Share of MEMORY_LIMIT given to the Go heap, between 0.0
//     and 1.0 (default 0.80). The remainder covers libvips allocations,
//     which the Go runtime does not account for.
//
// Example Kubernetes configuration:
//
//	env:
//	  - name: MEMORY_LIMIT
//	    valueFrom:
//	      resourceFieldRef:
//	        resource: limits.memory
package memory
