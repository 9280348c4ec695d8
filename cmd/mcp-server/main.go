package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gilby125/award-distance/config"
	"github.com/gilby125/award-distance/pkg/buildinfo"
	"github.com/gilby125/award-distance/pkg/calculator"
	"github.com/gilby125/award-distance/pkg/geo"
	"github.com/gilby125/award-distance/pkg/itinerary"
	"github.com/gilby125/award-distance/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// stdout carries the protocol, so logs go to stderr.
	logger.Init(logger.Config{Level: cfg.LoggingConfig.Level, Format: "text", Output: os.Stderr})

	calc, err := calculator.Load(context.Background(), cfg.DataConfig, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading datasets: %v\n", err)
		os.Exit(1)
	}

	if err := server.ServeStdio(newServer(calc)); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
	}
}

func newServer(calc *calculator.Calculator) *server.MCPServer {
	s := server.NewMCPServer(
		"award-distance-mcp",
		buildinfo.Version,
		server.WithLogging(),
	)

	s.AddTool(mcp.NewTool("award_quote",
		mcp.WithDescription("Compute the great-circle distance of a multi-leg route and look up its award chart price"),
		mcp.WithString("route",
			mcp.Required(),
			mcp.Description("Airport IATA codes separated by hyphens (e.g., YYZ-YHZ-LAX)"),
		),
	), quoteHandler(calc))

	s.AddTool(mcp.NewTool("route_distance",
		mcp.WithDescription("Compute segment and total great-circle distances in miles for a multi-leg route"),
		mcp.WithString("route",
			mcp.Required(),
			mcp.Description("Airport IATA codes separated by hyphens (e.g., YYZ-LAX)"),
		),
	), distanceHandler(calc))

	s.AddTool(mcp.NewTool("resolve_region",
		mcp.WithDescription("Return the award region containing a coordinate, or null"),
		mcp.WithNumber("lat", mcp.Required(), mcp.Description("Latitude in degrees")),
		mcp.WithNumber("lon", mcp.Required(), mcp.Description("Longitude in degrees")),
	), regionHandler(calc))

	return s
}

func quoteHandler(calc *calculator.Calculator) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return planResult(request, calc.Quote)
	}
}

func distanceHandler(calc *calculator.Calculator) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return planResult(request, calc.Distance)
	}
}

func planResult(request mcp.CallToolRequest, plan func(string) (itinerary.Plan, error)) (*mcp.CallToolResult, error) {
	argsMap, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("Invalid arguments format"), nil
	}
	route, _ := argsMap["route"].(string)

	p, err := plan(route)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid route %q: %v", route, err)), nil
	}
	return jsonResult(p)
}

func regionHandler(calc *calculator.Calculator) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, ok := request.Params.Arguments.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError("Invalid arguments format"), nil
		}
		lat, okLat := argsMap["lat"].(float64)
		lon, okLon := argsMap["lon"].(float64)
		if !okLat || !okLon {
			return mcp.NewToolResultError("lat and lon are required numbers"), nil
		}
		p := geo.Coordinates{Lat: lat, Lon: lon}
		if math.IsNaN(lat) || math.IsNaN(lon) || !p.IsValid() {
			return mcp.NewToolResultError(fmt.Sprintf("Coordinates out of range: %v, %v", lat, lon)), nil
		}

		var region *string
		if name, ok := calc.Index.Resolve(p); ok {
			region = &name
		}
		return jsonResult(map[string]interface{}{
			"location": p,
			"region":   region,
		})
	}
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error marshaling response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
