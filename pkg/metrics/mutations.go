package metrics

import "github.com/prometheus/client_golang/prometheus"

// MutationMetrics counts inventory writes by audit action.
type MutationMetrics struct {
	applied *prometheus.CounterVec
	clamped prometheus.Counter
}

// NewMutationMetrics registers the mutation counters on the provided registerer.
func NewMutationMetrics(reg prometheus.Registerer) *MutationMetrics {
	if reg == nil {
		return &MutationMetrics{}
	}
	applied := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_mutations_total",
		Help: "Inventory mutations applied, labeled by audit action.",
	}, []string{"action"})
	clamped := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "inventory_adjustments_clamped_total",
		Help: "Adjustments whose result was clamped to zero.",
	})
	reg.MustRegister(applied, clamped)
	return &MutationMetrics{
		applied: applied,
		clamped: clamped,
	}
}

// IncApplied increments the mutation counter for the given action.
func (m *MutationMetrics) IncApplied(action string) {
	if m == nil || m.applied == nil {
		return
	}
	m.applied.WithLabelValues(normalizeLabel(action)).Inc()
}

// IncClamped increments the clamped-adjustment counter.
func (m *MutationMetrics) IncClamped() {
	if m == nil || m.clamped == nil {
		return
	}
	m.clamped.Inc()
}
