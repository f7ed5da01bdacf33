package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "code"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "code"},
	)

	// Search
	searchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flight_searches_total",
			Help: "Total number of flight searches by cache outcome.",
		},
		[]string{"result"},
	)
	offersGenerated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "flight_offers_generated_total",
			Help: "Total number of synthetic flight offers generated.",
		},
	)
	offerPrice = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "flight_offer_price",
			Help:    "Distribution of generated offer prices.",
			Buckets: []float64{1000, 2000, 3000, 4000, 5000, 6000, 8000, 10000, 12000, 15000},
		},
	)

	// Alerts
	alertsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "price_alerts_created_total",
			Help: "Total number of price alerts created.",
		},
	)
	alertsTriggered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "price_alerts_triggered_total",
			Help: "Total number of price alerts triggered by the sweep.",
		},
	)
	alertsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "price_alerts_active",
			Help: "Current number of active price alerts.",
		},
	)
	notificationIntents = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "notification_intents_total",
			Help: "Total number of notification intents recorded.",
		},
	)

	// Sweep
	sweepRuns = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "alert_sweep_runs_total",
			Help: "Total number of alert sweep cycles executed.",
		},
	)
	sweepDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "alert_sweep_duration_seconds",
			Help:    "Duration of one alert sweep cycle (seconds).",
			Buckets: prometheus.DefBuckets,
		},
	)
	sweepAlertErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "alert_sweep_alert_errors_total",
			Help: "Total number of alerts that failed during a sweep cycle.",
		},
	)
)

var registerOnce sync.Once

func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpRequests,
			httpDuration,

			searchesTotal,
			offersGenerated,
			offerPrice,

			alertsCreated,
			alertsTriggered,
			alertsActive,
			notificationIntents,

			sweepRuns,
			sweepDuration,
			sweepAlertErrors,
		)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}

// --- HTTP ---
func ObserveHTTPRequest(method, route, code string, d time.Duration) {
	httpRequests.WithLabelValues(method, route, code).Inc()
	httpDuration.WithLabelValues(method, route, code).Observe(d.Seconds())
}

// --- Search ---
func IncSearchHit()  { searchesTotal.WithLabelValues("hit").Inc() }
func IncSearchMiss() { searchesTotal.WithLabelValues("miss").Inc() }

// ObserveGeneratedOffers records one generation batch by its prices.
func ObserveGeneratedOffers(prices []int) {
	offersGenerated.Add(float64(len(prices)))
	for _, p := range prices {
		offerPrice.Observe(float64(p))
	}
}

// --- Alerts ---
func IncAlertCreated()       { alertsCreated.Inc(); alertsActive.Inc() }
func IncAlertDeactivated()   { alertsActive.Dec() }
func IncAlertTriggered()     { alertsTriggered.Inc() }
func IncNotificationIntent() { notificationIntents.Inc() }

// --- Sweep ---
func IncSweepRun()        { sweepRuns.Inc() }
func IncSweepAlertError() { sweepAlertErrors.Inc() }

func ObserveSweepDuration(d time.Duration) { sweepDuration.Observe(d.Seconds()) }
