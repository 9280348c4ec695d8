package api

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gilby125/award-distance/pkg/airports"
	"github.com/gilby125/award-distance/pkg/fares"
	"github.com/gilby125/award-distance/pkg/geo"
	"github.com/gilby125/award-distance/pkg/health"
	"github.com/gilby125/award-distance/pkg/itinerary"
	"github.com/gilby125/award-distance/pkg/logger"
	"github.com/gilby125/award-distance/pkg/regions"
)

// QuoteResponse is a plan plus its prices in display order.
type QuoteResponse struct {
	itinerary.Plan
	Fares []fares.Fare `json:"fares,omitempty"`
}

// FareLookupResponse is the result of a direct chart lookup.
type FareLookupResponse struct {
	Zone     fares.ZoneKey `json:"zone"`
	Distance float64       `json:"distance"`
	Priced   bool          `json:"priced"`
	Quote    *fares.Quote  `json:"quote,omitempty"`
	Fares    []fares.Fare  `json:"fares,omitempty"`
}

// RegionResponse reports the region containing a point. Region is null when
// no region matches.
type RegionResponse struct {
	Location geo.Coordinates `json:"location"`
	Region   *string         `json:"region"`
}

// AirportResponse is an airport and the region it falls in.
type AirportResponse struct {
	airports.Airport
	Region *string `json:"region"`
}

func healthHandler(check func(ctx context.Context) health.HealthReport) gin.HandlerFunc {
	return func(c *gin.Context) {
		report := check(c.Request.Context())
		status := http.StatusOK
		if report.Status != health.StatusUp {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, report)
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func regionPtr(name string, ok bool) *string {
	if !ok {
		return nil
	}
	return &name
}

func parseFloatParam(c *gin.Context, name string) (float64, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		badRequest(c, name+" is required")
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		badRequest(c, "invalid "+name+": "+raw)
		return 0, false
	}
	return v, true
}

// GetRegions lists region names in resolution order.
func GetRegions(set regions.Set) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"regions": set.Names()})
	}
}

// ResolveRegion classifies ?lat=&lon= into a region.
func ResolveRegion(resolver regions.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		lat, ok := parseFloatParam(c, "lat")
		if !ok {
			return
		}
		lon, ok := parseFloatParam(c, "lon")
		if !ok {
			return
		}
		p := geo.Coordinates{Lat: lat, Lon: lon}
		if !p.IsValid() {
			badRequest(c, "coordinates out of range")
			return
		}

		c.JSON(http.StatusOK, RegionResponse{
			Location: p,
			Region:   regionPtr(resolver.Resolve(p)),
		})
	}
}

// GetAirport returns an airport by IATA code.
func GetAirport(dir *airports.Directory, resolver regions.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")
		a, ok := dir.Airport(code)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown airport: " + strings.ToUpper(code)})
			return
		}
		c.JSON(http.StatusOK, AirportResponse{
			Airport: a,
			Region:  regionPtr(resolver.Resolve(a.Location)),
		})
	}
}

func parseRoute(c *gin.Context) ([]string, bool) {
	route := c.Query("route")
	codes, err := itinerary.ParseRoute(route)
	if err != nil {
		badRequest(c, "invalid route: "+err.Error())
		return nil, false
	}
	return codes, true
}

// GetDistance returns per-segment and total distances for ?route=.
func GetDistance(planner *itinerary.Planner) gin.HandlerFunc {
	return func(c *gin.Context) {
		codes, ok := parseRoute(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, planner.Distance(codes))
	}
}

// GetQuote returns the full plan for ?route=, including the award quote
// when one matches.
func GetQuote(planner *itinerary.Planner) gin.HandlerFunc {
	return func(c *gin.Context) {
		codes, ok := parseRoute(c)
		if !ok {
			return
		}

		plan := planner.Plan(codes)
		resp := QuoteResponse{Plan: plan}
		if plan.Quote != nil {
			resp.Fares = plan.Quote.Fares()
		}
		if missing := plan.MissingSegments(); len(missing) > 0 {
			logger.WithContext(c.Request.Context()).Debug("Route has unknown airports",
				"route", itinerary.FormatRoute(codes), "missing_segments", len(missing))
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GetFareZones lists the zone pairs present in the chart.
func GetFareZones(table *fares.Table) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"zones": table.Zones()})
	}
}

// LookupFare runs a chart lookup for ?start=&end=&distance=.
func LookupFare(table *fares.Table) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := strings.TrimSpace(c.Query("start"))
		end := strings.TrimSpace(c.Query("end"))
		if start == "" || end == "" {
			badRequest(c, "start and end are required")
			return
		}
		distance, ok := parseFloatParam(c, "distance")
		if !ok {
			return
		}
		if distance < 0 {
			badRequest(c, "distance must not be negative")
			return
		}

		resp := FareLookupResponse{Zone: fares.NewZoneKey(start, end), Distance: distance}
		if q, found := table.Lookup(start, end, distance); found {
			resp.Priced = true
			resp.Quote = &q
			resp.Fares = q.Fares()
		}
		c.JSON(http.StatusOK, resp)
	}
}
