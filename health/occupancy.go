package health

import (
	"context"
	"fmt"

	"github.com/jonwraymond/bypass/store"
)

// StatsSource is any store exposing occupancy stats. Both store.Store and
// store.Guarded satisfy it; only Guarded is safe to check from a separate
// goroutine.
type StatsSource interface {
	Stats() store.Stats
}

// OccupancyCheckerConfig configures the store occupancy checker.
type OccupancyCheckerConfig struct {
	// MaxEntries is the entry count considered full. Required.
	MaxEntries int

	// WarningThreshold is the fraction of MaxEntries that triggers
	// degraded status. Value should be between 0 and 1. Default: 0.8
	WarningThreshold float64

	// CriticalThreshold is the fraction of MaxEntries that triggers
	// unhealthy status. Value should be between 0 and 1. Default: 0.95
	CriticalThreshold float64
}

// OccupancyChecker reports how full a store is. The store itself enforces
// no capacity limit; the checker lets embedders watch occupancy against
// their own budget.
type OccupancyChecker struct {
	name   string
	source StatsSource
	config OccupancyCheckerConfig
}

// NewOccupancyChecker creates a checker for the given store.
func NewOccupancyChecker(name string, source StatsSource, config OccupancyCheckerConfig) *OccupancyChecker {
	if config.WarningThreshold <= 0 || config.WarningThreshold >= 1 {
		config.WarningThreshold = 0.8
	}
	if config.CriticalThreshold <= 0 || config.CriticalThreshold >= 1 {
		config.CriticalThreshold = 0.95
	}
	if config.CriticalThreshold < config.WarningThreshold {
		config.CriticalThreshold = config.WarningThreshold
	}

	return &OccupancyChecker{name: name, source: source, config: config}
}

// Name returns the name of this checker.
func (c *OccupancyChecker) Name() string {
	return c.name
}

// Check performs the occupancy check.
func (c *OccupancyChecker) Check(ctx context.Context) Result {
	select {
	case <-ctx.Done():
		return Unhealthy("context cancelled", ctx.Err())
	default:
	}

	stats := c.source.Stats()
	details := map[string]any{
		"entries": stats.Entries,
		"nodes":   stats.Nodes,
	}

	if c.config.MaxEntries <= 0 {
		return Healthy("no entry budget configured").WithDetails(details)
	}

	used := float64(stats.Entries) / float64(c.config.MaxEntries)
	details["max_entries"] = c.config.MaxEntries
	details["used_pct"] = used * 100

	msg := fmt.Sprintf("%d of %d entries used", stats.Entries, c.config.MaxEntries)
	switch {
	case used >= c.config.CriticalThreshold:
		return Unhealthy(msg, nil).WithDetails(details)
	case used >= c.config.WarningThreshold:
		return Degraded(msg).WithDetails(details)
	default:
		return Healthy(msg).WithDetails(details)
	}
}
