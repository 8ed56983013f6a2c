package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RouteDecisions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "masjidsite_route_decisions_total",
		Help: "Host router decisions by kind",
	}, []string{"decision"})

	ProviderFetches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "masjidsite_prayer_provider_fetches_total",
		Help: "Prayer-time provider fetches by outcome (ok, error, unavailable)",
	}, []string{"result"})

	ProviderLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "masjidsite_prayer_provider_latency_seconds",
		Help:    "Latency of prayer-time provider requests",
		Buckets: prometheus.DefBuckets,
	})

	CacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "masjidsite_prayer_cache_lookups_total",
		Help: "Prayer table cache lookups by result (hit, miss)",
	}, []string{"result"})
)

// Register registers the collectors on reg, or the default registerer if nil.
// Registering twice is not an error.
func Register(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	for _, c := range []prometheus.Collector{RouteDecisions, ProviderFetches, ProviderLatency, CacheLookups} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return err
			}
		}
	}
	return nil
}
