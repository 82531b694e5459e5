package health

import (
	"context"
	"fmt"
	"runtime"
)

// HeapCheckerConfig configures the managed-heap health checker.
type HeapCheckerConfig struct {
	// WarningThreshold is the fraction of MaxAlloc that triggers degraded
	// status. Value should be between 0 and 1. Default: 0.8
	WarningThreshold float64

	// CriticalThreshold is the fraction of MaxAlloc that triggers
	// unhealthy status. Value should be between 0 and 1. Default: 0.95
	CriticalThreshold float64

	// MaxAlloc is the maximum expected heap allocation in bytes.
	// If zero, the current runtime Sys figure is used as the ceiling.
	MaxAlloc uint64
}

// HeapChecker watches the garbage-collected heap. The cache keeps its
// trees off the hot allocation path, so sustained heap growth in an
// embedding process usually points at the caller's side.
type HeapChecker struct {
	config HeapCheckerConfig
}

// NewHeapChecker creates a new heap health checker.
func NewHeapChecker(config HeapCheckerConfig) *HeapChecker {
	if config.WarningThreshold <= 0 || config.WarningThreshold >= 1 {
		config.WarningThreshold = 0.8
	}
	if config.CriticalThreshold <= 0 || config.CriticalThreshold >= 1 {
		config.CriticalThreshold = 0.95
	}
	if config.CriticalThreshold < config.WarningThreshold {
		config.CriticalThreshold = config.WarningThreshold
	}

	return &HeapChecker{config: config}
}

// Name returns the name of this checker.
func (c *HeapChecker) Name() string {
	return "heap"
}

// Check performs the heap check.
func (c *HeapChecker) Check(ctx context.Context) Result {
	select {
	case <-ctx.Done():
		return Unhealthy("context cancelled", ctx.Err())
	default:
	}

	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	details := map[string]any{
		"heap_alloc": stats.HeapAlloc,
		"sys":        stats.Sys,
		"num_gc":     stats.NumGC,
	}

	maxAlloc := c.config.MaxAlloc
	if maxAlloc == 0 {
		maxAlloc = stats.Sys
	}
	if maxAlloc == 0 {
		return Healthy("heap stats unavailable").WithDetails(details)
	}

	used := float64(stats.HeapAlloc) / float64(maxAlloc)
	details["max_alloc"] = maxAlloc
	details["used_pct"] = used * 100

	msg := fmt.Sprintf("%d of %d heap bytes used", stats.HeapAlloc, maxAlloc)
	switch {
	case used >= c.config.CriticalThreshold:
		return Unhealthy(msg, nil).WithDetails(details)
	case used >= c.config.WarningThreshold:
		return Degraded(msg).WithDetails(details)
	default:
		return Healthy(msg).WithDetails(details)
	}
}
