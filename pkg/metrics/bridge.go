package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// BridgeMetrics records catalog fetches and webhook order routing. All
// methods are nil-safe so codepaths can run without a registry in tests.
type BridgeMetrics struct {
	catalogFetchDuration *prometheus.HistogramVec
	webhookDeliveries    *prometheus.CounterVec
	ordersRouted         *prometheus.CounterVec
}

// NewBridgeMetrics registers the bridge metrics on the provided registerer.
func NewBridgeMetrics(reg prometheus.Registerer) *BridgeMetrics {
	if reg == nil {
		return &BridgeMetrics{}
	}
	catalogFetchDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_fetch_duration_seconds",
		Help:    "Duration of upstream catalog fetches in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"result"})
	webhookDeliveries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "webhook_deliveries_total",
		Help: "Order webhook deliveries by outcome.",
	}, []string{"outcome"})
	ordersRouted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_routed_total",
		Help: "Partner-tagged orders routed downstream by outcome.",
	}, []string{"outcome"})
	reg.MustRegister(catalogFetchDuration, webhookDeliveries, ordersRouted)
	return &BridgeMetrics{
		catalogFetchDuration: catalogFetchDuration,
		webhookDeliveries:    webhookDeliveries,
		ordersRouted:         ordersRouted,
	}
}

// ObserveCatalogFetch records the duration of one upstream catalog fetch.
func (b *BridgeMetrics) ObserveCatalogFetch(result string, duration time.Duration) {
	if b == nil || b.catalogFetchDuration == nil {
		return
	}
	b.catalogFetchDuration.WithLabelValues(normalizeLabel(result)).Observe(duration.Seconds())
}

// IncWebhookDelivery counts one webhook delivery by outcome
// (accepted, signature_mismatch, malformed).
func (b *BridgeMetrics) IncWebhookDelivery(outcome string) {
	if b == nil || b.webhookDeliveries == nil {
		return
	}
	b.webhookDeliveries.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// IncOrderRouted counts one routed order by outcome (routed, failed).
func (b *BridgeMetrics) IncOrderRouted(outcome string) {
	if b == nil || b.ordersRouted == nil {
		return
	}
	b.ordersRouted.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
