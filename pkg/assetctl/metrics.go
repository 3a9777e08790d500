package assetctl

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	uploadsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "atelier_asset_uploads_total",
		Help: "Asset objects written to the bucket, by folder.",
	}, []string{"folder"})

	quotaRejectedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "atelier_asset_quota_rejected_total",
		Help: "Uploads rejected by the storage quota.",
	})

	reclaimsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "atelier_asset_reclaims_total",
		Help: "Managed objects reclaimed after replace or delete.",
	})

	reclaimFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "atelier_asset_reclaim_failures_total",
		Help: "Reclaim attempts that failed and were left to the sweeper.",
	})
)

// Collectors exposes the asset metrics so the metrics endpoint can add
// them to its registry.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		uploadsTotal,
		quotaRejectedTotal,
		reclaimsTotal,
		reclaimFailuresTotal,
	}
}
