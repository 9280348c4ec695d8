package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCollector(t *testing.T) (*Collector, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	c, err := New(reg)
	require.NoError(t, err)
	return c, reg
}

func TestObserveRegion(t *testing.T) {
	c, _ := newCollector(t)

	c.ObserveRegion("North America", true)
	c.ObserveRegion("North America", true)
	c.ObserveRegion("", false)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.RegionResolutions.WithLabelValues("North America")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.RegionResolutions.WithLabelValues(NoRegion)))
}

func TestObserveFareLookupAndMissing(t *testing.T) {
	c, _ := newCollector(t)

	c.ObserveFareLookup(true)
	c.ObserveFareLookup(false)
	c.ObserveFareLookup(false)
	c.ObserveMissingAirport()

	assert.Equal(t, 1.0, testutil.ToFloat64(c.FareLookups.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.FareLookups.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.MissingAirports))
}

func TestObserveRequest(t *testing.T) {
	c, reg := newCollector(t)

	c.ObserveRequest(http.MethodGet, "/api/v1/quote", 200, 5*time.Millisecond)
	c.ObserveRequest(http.MethodGet, "", 404, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.HTTPRequests.WithLabelValues("GET", "/api/v1/quote", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.HTTPRequests.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(c.HTTPDurations))

	count, err := testutil.GatherAndCount(reg, "award_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNewTwiceReusesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := New(reg)
	require.NoError(t, err)
	second, err := New(reg)
	require.NoError(t, err)

	first.ObserveMissingAirport()
	assert.Equal(t, 1.0, testutil.ToFloat64(second.MissingAirports))
}

func TestNilCollectorIsSafe(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.ObserveRegion("Atlantic", true)
		c.ObserveFareLookup(true)
		c.ObserveMissingAirport()
		c.SetTableRows("fares", 3)
		c.ObserveRequest("GET", "/", 200, time.Second)
	})

	var r Recorder = c
	assert.NotNil(t, r)
}

func TestHandlerExposesMetrics(t *testing.T) {
	c, _ := newCollector(t)
	c.SetTableRows("fares", 42)

	rr := httptest.NewRecorder()
	c.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `award_table_rows{table="fares"} 42`)
}
