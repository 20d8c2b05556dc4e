package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "macdl"

var (
	VersionResolveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "version_resolve_total",
		Help:      "Version lookups by outcome (resolved or fallback).",
	}, []string{"outcome"})

	RelayRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "relay_requests_total",
		Help:      "Proxy relay requests by result (relayed or fallback).",
	}, []string{"result"})

	DownloadInitiatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "download_initiated_total",
		Help:      "Download initiations by result (opened, redirected, failed or rejected).",
	}, []string{"result"})
)
