// Package calculator loads the airport directory and award chart and wires
// them into an itinerary planner shared by the server, the CLI and the MCP
// server.
package calculator

import (
	"context"
	"fmt"

	"github.com/gilby125/award-distance/config"
	"github.com/gilby125/award-distance/pkg/airports"
	"github.com/gilby125/award-distance/pkg/fares"
	"github.com/gilby125/award-distance/pkg/itinerary"
	"github.com/gilby125/award-distance/pkg/logger"
	"github.com/gilby125/award-distance/pkg/metrics"
	"github.com/gilby125/award-distance/pkg/regions"
	"github.com/gilby125/award-distance/pkg/source"
)

// Calculator holds the loaded datasets.
type Calculator struct {
	Airports *airports.Directory
	Regions  regions.Set
	Index    *regions.Index
	Fares    *fares.Table
	Planner  *itinerary.Planner
}

// Load reads both datasets named by cfg. collector may be nil.
func Load(ctx context.Context, cfg config.DataConfig, collector *metrics.Collector) (*Calculator, error) {
	opener := source.New(source.Config{Timeout: cfg.SourceTimeout, RetryMax: cfg.SourceRetryMax})

	dir, err := airports.LoadFile(ctx, opener, cfg.AirportsFile)
	if err != nil {
		return nil, fmt.Errorf("loading airports: %w", err)
	}
	table, err := fares.LoadFile(ctx, opener, cfg.FareChartFile)
	if err != nil {
		return nil, fmt.Errorf("loading fare chart: %w", err)
	}

	calc, err := New(dir, regions.Default(), table, collector)
	if err != nil {
		return nil, err
	}

	logger.WithFields(map[string]interface{}{
		"airports":      dir.Len(),
		"fare_rows":     table.Len(),
		"airports_file": cfg.AirportsFile,
		"fare_chart":    cfg.FareChartFile,
	}).Info("Datasets loaded")
	return calc, nil
}

// New wires already loaded datasets together.
func New(dir *airports.Directory, set regions.Set, table *fares.Table, collector *metrics.Collector) (*Calculator, error) {
	idx, err := regions.NewIndex(set)
	if err != nil {
		return nil, fmt.Errorf("indexing regions: %w", err)
	}

	for _, o := range table.Overlaps() {
		logger.WithFields(map[string]interface{}{
			"zone":   o.Zone.String(),
			"first":  o.First,
			"second": o.Second,
		}).Debug("Overlapping distance bands, earlier row wins")
	}

	planner := &itinerary.Planner{Airports: dir, Regions: idx, Fares: table}
	if collector != nil {
		collector.SetTableRows("airports", dir.Len())
		collector.SetTableRows("fares", table.Len())
		planner.Metrics = collector
	}

	return &Calculator{
		Airports: dir,
		Regions:  idx.Set(),
		Index:    idx,
		Fares:    table,
		Planner:  planner,
	}, nil
}

// Quote parses route and plans it with fares.
func (c *Calculator) Quote(route string) (itinerary.Plan, error) {
	codes, err := itinerary.ParseRoute(route)
	if err != nil {
		return itinerary.Plan{}, err
	}
	return c.Planner.Plan(codes), nil
}

// Distance parses route and returns its segment distances.
func (c *Calculator) Distance(route string) (itinerary.Plan, error) {
	codes, err := itinerary.ParseRoute(route)
	if err != nil {
		return itinerary.Plan{}, err
	}
	return c.Planner.Distance(codes), nil
}
