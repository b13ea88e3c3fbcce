package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus counters for the matrimony workflows.
// A nil *Metrics is valid and counts nothing.
type Metrics struct {
	BiodatasCreated  prometheus.Counter
	PremiumRequested prometheus.Counter
	PremiumApproved  prometheus.Counter
	FavoritesAdded   prometheus.Counter
}

// New creates and registers all counters on the default registry.
func New() *Metrics {
	return &Metrics{
		BiodatasCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nikahlink_biodatas_created_total",
			Help: "Total number of biodata profiles created",
		}),
		PremiumRequested: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nikahlink_premium_requests_total",
			Help: "Total number of premium requests initiated",
		}),
		PremiumApproved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nikahlink_premium_approvals_total",
			Help: "Total number of premium requests approved",
		}),
		FavoritesAdded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nikahlink_favorites_added_total",
			Help: "Total number of favorite links added",
		}),
	}
}

func (m *Metrics) IncBiodatasCreated() {
	if m != nil {
		m.BiodatasCreated.Inc()
	}
}

func (m *Metrics) IncPremiumRequested() {
	if m != nil {
		m.PremiumRequested.Inc()
	}
}

func (m *Metrics) IncPremiumApproved() {
	if m != nil {
		m.PremiumApproved.Inc()
	}
}

func (m *Metrics) IncFavoritesAdded() {
	if m != nil {
		m.FavoritesAdded.Inc()
	}
}
