// Package status holds lock-free counters the refresh loop updates and main reports.
package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Registry is the central metrics facade
// Components cache pointers at construction; hot paths write directly to atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Stamps *MetricMap[atomic.Uint32] // 32-bit epoch seconds, reported in hex
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Stamps: NewMetricMap[atomic.Uint32](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Stamps.Count()
}

// Summary renders every metric as sorted key=value pairs for the log
func (r *Registry) Summary() string {
	var sb strings.Builder
	r.Ints.Range(func(key string, v *atomic.Int64) {
		fmt.Fprintf(&sb, "%s=%d ", key, v.Load())
	})
	r.Stamps.Range(func(key string, v *atomic.Uint32) {
		fmt.Fprintf(&sb, "%s=%08X ", key, v.Load())
	})
	return strings.TrimSuffix(sb.String(), " ")
}
