package slice

import (
	"app/base/anomaly"
	"app/base/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const (
	resultOK             = "ok"
	resultNoBody         = "no_body"
	resultTransportError = "transport_error"
	resultMalformedBody  = "malformed_body"
	resultNumberFormat   = "number_format"
)

const metricsJob = "slice_purchase_check"

var checksCnt = prometheus.NewCounterVec(prometheus.CounterOpts{
	Help:      "Entitlement checks by result",
	Namespace: "slice_purchase",
	Subsystem: "entitlement",
	Name:      "checks",
}, []string{"result"})

// registered on default registry for services embedding the check
func init() {
	prometheus.MustRegister(checksCnt)
}

// Metrics returns pusher of check and anomaly metrics, the check command is too short-lived to be scraped
func Metrics(pushGateway string) *push.Pusher {
	registry := prometheus.NewRegistry()
	registry.MustRegister(checksCnt)
	registry.MustRegister(anomaly.Collectors()...)

	return push.New(pushGateway, metricsJob).Gatherer(registry)
}

// pushMetrics pushes metrics when PROMETHEUS_PUSHGATEWAY is set
func pushMetrics() {
	pushGateway := utils.Getenv("PROMETHEUS_PUSHGATEWAY", "")
	if pushGateway == "" {
		return
	}
	if err := Metrics(pushGateway).Add(); err != nil {
		utils.LogInfo("err", err.Error(), "Could not push to pushgateway")
	}
}
