// Package metrics collects run statistics: Prometheus counters and
// histograms describing applied operations and reported failures per
// strategy, and runtime memory snapshots taken around benchmark rounds.
package metrics
