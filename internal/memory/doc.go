// Package memory sizes the Go runtime's soft memory limit for containerized
// deployments.
//
// Environment variables:
//   - GOMEMLIMIT: standard Go setting; when present it is left untouched
//   - MEMORY_LIMIT: container memory limit in bytes (Kubernetes Downward API)
//   - MEMORY_RATIO: share of MEMORY_LIMIT given to the heap (default 0.85)
//
// [ConfigureFromEnv] is called once from main before the library is opened.
package memory
