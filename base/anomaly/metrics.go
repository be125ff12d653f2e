package anomaly

import (
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

var anomaliesCnt = prometheus.NewCounterVec(prometheus.CounterOpts{
	Help:      "Counter of reported anomalies by anomaly id",
	Namespace: "slice_purchase",
	Subsystem: "core",
	Name:      "anomalies",
}, []string{"id"})

func init() {
	prometheus.MustRegister(anomaliesCnt)
}

// Collectors returns anomaly metrics for registries other than the default one
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{anomaliesCnt}
}

type MetricsReporter struct{}

func (MetricsReporter) Report(id uuid.UUID, _ string) {
	anomaliesCnt.WithLabelValues(id.String()).Inc()
}
