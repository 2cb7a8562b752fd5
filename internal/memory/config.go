package memory

import (
	"fmt"
	"math"
	"os"
	"runtime/debug"
	"strconv"
)

// DefaultMemoryRatio is the share of the container limit given to the Go heap.
const DefaultMemoryRatio = 0.85

// Configuration sources.
const (
	SourceNone        = "none"
	SourceGOMEMLIMIT  = "GOMEMLIMIT"
	SourceMemoryLimit = "MEMORY_LIMIT"
)

// ConfigResult holds the result of memory configuration
type ConfigResult struct {
	// Source is one of SourceNone, SourceGOMEMLIMIT or SourceMemoryLimit.
	Source string

	// ContainerLimit is the container memory limit in bytes (0 if not set)
	ContainerLimit int64

	// GoMemLimit is the configured GOMEMLIMIT in bytes (0 if not set)
	GoMemLimit int64

	// Ratio is the memory ratio used (0 if not applicable)
	Ratio float64
}

// Configured reports whether a Go memory limit is in effect.
func (r ConfigResult) Configured() bool {
	return r.GoMemLimit > 0
}

// Plan works out the Go memory limit from the environment without applying it.
// GOMEMLIMIT wins when set; otherwise MEMORY_LIMIT (bytes, typically from the
// Kubernetes Downward API) is scaled by MEMORY_RATIO.
func Plan(getenv func(string) string) (ConfigResult, error) {
	if getenv("GOMEMLIMIT") != "" {
		result := ConfigResult{Source: SourceGOMEMLIMIT}
		if limit := debug.SetMemoryLimit(-1); limit > 0 && limit < math.MaxInt64 {
			result.GoMemLimit = limit
		}
		return result, nil
	}

	memLimitStr := getenv("MEMORY_LIMIT")
	if memLimitStr == "" {
		return ConfigResult{Source: SourceNone}, nil
	}

	memLimit, err := strconv.ParseInt(memLimitStr, 10, 64)
	if err != nil || memLimit <= 0 {
		return ConfigResult{Source: SourceNone}, fmt.Errorf("invalid MEMORY_LIMIT %q", memLimitStr)
	}

	ratio := DefaultMemoryRatio
	if ratioStr := getenv("MEMORY_RATIO"); ratioStr != "" {
		parsed, err := strconv.ParseFloat(ratioStr, 64)
		if err != nil || parsed <= 0 || parsed > 1.0 {
			return ConfigResult{Source: SourceNone}, fmt.Errorf("invalid MEMORY_RATIO %q (want 0.0-1.0)", ratioStr)
		}
		ratio = parsed
	}

	return ConfigResult{
		Source:         SourceMemoryLimit,
		ContainerLimit: memLimit,
		GoMemLimit:     int64(float64(memLimit) * ratio),
		Ratio:          ratio,
	}, nil
}

// ConfigureFromEnv applies the planned limit. Call it early in main, before
// significant allocations.
func ConfigureFromEnv() (ConfigResult, error) {
	result, err := Plan(os.Getenv)
	if err != nil {
		return result, err
	}
	if result.Source == SourceMemoryLimit {
		debug.SetMemoryLimit(result.GoMemLimit)
	}
	return result, nil
}
