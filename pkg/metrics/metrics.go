// Package metrics exposes Prometheus counters for region resolution, fare
// lookups and the HTTP surface.
package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NoRegion is the region label used when a point falls outside every region.
const NoRegion = "none"

// Recorder receives domain events from the planner. A nil *Collector is a
// valid Recorder that records nothing.
type Recorder interface {
	ObserveRegion(region string, ok bool)
	ObserveFareLookup(priced bool)
	ObserveMissingAirport()
}

// Collector bundles the service's Prometheus metrics.
type Collector struct {
	gatherer prometheus.Gatherer

	RegionResolutions *prometheus.CounterVec
	FareLookups       *prometheus.CounterVec
	MissingAirports   prometheus.Counter
	TableRows         *prometheus.GaugeVec

	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec
}

// New registers the metrics against reg, defaulting to the global registry
// when reg is nil. Registering twice against the same registry reuses the
// existing collectors.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	regions, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "award_region_resolutions_total",
		Help: "Route endpoints resolved to a region, labeled by region name.",
	}, []string{"region"}), "award_region_resolutions_total")
	if err != nil {
		return nil, err
	}

	lookups, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "award_fare_lookups_total",
		Help: "Fare chart lookups, labeled by whether a row matched.",
	}, []string{"result"}), "award_fare_lookups_total")
	if err != nil {
		return nil, err
	}

	missing, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "award_missing_airports_total",
		Help: "Route segments skipped because an airport code was unknown.",
	}), "award_missing_airports_total")
	if err != nil {
		return nil, err
	}

	rows, err := register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "award_table_rows",
		Help: "Rows loaded into each lookup table.",
	}, []string{"table"}), "award_table_rows")
	if err != nil {
		return nil, err
	}

	requests, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "award_http_requests_total",
		Help: "HTTP requests, labeled by method, route and status code.",
	}, []string{"method", "route", "code"}), "award_http_requests_total")
	if err != nil {
		return nil, err
	}

	durations, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "award_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"method", "route"}), "award_http_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:          gatherer,
		RegionResolutions: regions,
		FareLookups:       lookups,
		MissingAirports:   missing,
		TableRows:         rows,
		HTTPRequests:      requests,
		HTTPDurations:     durations,
	}, nil
}

// ObserveRegion counts one endpoint resolution.
func (c *Collector) ObserveRegion(region string, ok bool) {
	if c == nil {
		return
	}
	if !ok {
		region = NoRegion
	}
	c.RegionResolutions.WithLabelValues(region).Inc()
}

// ObserveFareLookup counts one fare chart lookup.
func (c *Collector) ObserveFareLookup(priced bool) {
	if c == nil {
		return
	}
	result := "miss"
	if priced {
		result = "hit"
	}
	c.FareLookups.WithLabelValues(result).Inc()
}

// ObserveMissingAirport counts one skipped segment.
func (c *Collector) ObserveMissingAirport() {
	if c == nil {
		return
	}
	c.MissingAirports.Inc()
}

// SetTableRows records the size of a loaded table.
func (c *Collector) SetTableRows(table string, rows int) {
	if c == nil {
		return
	}
	c.TableRows.WithLabelValues(table).Set(float64(rows))
}

// ObserveRequest records one completed HTTP request.
func (c *Collector) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if c == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDurations.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T, name string) (T, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
			var zero T
			return zero, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		var zero T
		return zero, err
	}
	return c, nil
}
