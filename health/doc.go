// Package health provides health checks for processes embedding the cache.
//
// OccupancyChecker watches a store's entry and node counts against
// configured limits, HeapChecker watches the managed heap the cache is
// designed to stay out of, and Aggregator combines checkers into one
// composite status.
package health
