package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gilby125/award-distance/pkg/airports"
	"github.com/gilby125/award-distance/pkg/buildinfo"
	"github.com/gilby125/award-distance/pkg/cache"
	"github.com/gilby125/award-distance/pkg/fares"
	"github.com/gilby125/award-distance/pkg/health"
	"github.com/gilby125/award-distance/pkg/itinerary"
	"github.com/gilby125/award-distance/pkg/metrics"
	"github.com/gilby125/award-distance/pkg/middleware"
	"github.com/gilby125/award-distance/pkg/regions"
)

// Deps are the loaded tables and optional infrastructure the routes serve.
// Health, Metrics and Cache may be nil.
type Deps struct {
	Airports *airports.Directory
	Regions  regions.Set
	Resolver regions.Resolver
	Fares    *fares.Table
	Planner  *itinerary.Planner

	Health   *health.HealthChecker
	Metrics  *metrics.Collector
	Cache    *cache.CacheManager
	CacheTTL time.Duration
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, deps Deps) {
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
	if deps.Metrics != nil {
		router.Use(middleware.Metrics(deps.Metrics))
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	hc := deps.Health
	if hc == nil {
		hc = health.NewHealthChecker(buildinfo.Version)
	}
	router.GET("/health", healthHandler(hc.CheckHealth))
	router.GET("/health/ready", healthHandler(hc.CheckReadiness))
	router.GET("/health/live", healthHandler(hc.CheckLiveness))
	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, buildinfo.Info())
	})

	resolver := deps.Resolver
	if resolver == nil {
		resolver = deps.Regions
	}

	v1 := router.Group("/api/v1")
	if deps.Cache != nil {
		v1.Use(middleware.ResponseCache(deps.Cache, middleware.CacheConfig{TTL: deps.CacheTTL}))
	}
	{
		v1.GET("/regions", GetRegions(deps.Regions))
		v1.GET("/regions/resolve", ResolveRegion(resolver))

		v1.GET("/airports/:code", GetAirport(deps.Airports, resolver))

		v1.GET("/distance", GetDistance(deps.Planner))
		v1.GET("/quote", GetQuote(deps.Planner))

		v1.GET("/fares/zones", GetFareZones(deps.Fares))
		v1.GET("/fares/lookup", LookupFare(deps.Fares))
	}
}
