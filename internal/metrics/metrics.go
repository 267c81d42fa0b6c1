package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SummaryRows is the number of rows held in the in-memory summary table.
	SummaryRows = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "busyness_summary_rows",
		Help: "Number of rows loaded into the in-memory busyness summary",
	})

	// SummaryLoadDuration covers the query and row scan only. Opening and
	// pinging the database happen before Load is called.
	SummaryLoadDuration = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "busyness_summary_load_duration_seconds",
		Help: "Time spent running the busyness summary query and reading its rows at startup, excluding connect and ping",
	})
)

var (
	// DroppedRows counts matching rows excluded from a response because their
	// location id is not an integer.
	DroppedRows = promauto.NewCounter(prometheus.CounterOpts{
		Name: "busyness_dropped_rows_total",
		Help: "Number of matching summary rows dropped because the location id is not an integer",
	})

	RecordsReturned = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "busyness_records_returned",
		Help:    "Number of busyness records returned per query",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 75, 100},
	})
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Number of HTTP requests served, by route, method and status",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Latency of HTTP requests served, by route and method",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})
)
