// Command awardcalc prints route distances, airport regions and award chart
// prices from the terminal.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gilby125/award-distance/config"
	"github.com/gilby125/award-distance/pkg/buildinfo"
	"github.com/gilby125/award-distance/pkg/calculator"
	"github.com/gilby125/award-distance/pkg/geo"
	"github.com/gilby125/award-distance/pkg/itinerary"
	"github.com/gilby125/award-distance/pkg/logger"
	"github.com/gilby125/award-distance/pkg/regions"
)

const routePrompt = "Enter airport IATA codes separated by hyphens (e.g. YYZ-YHZ-LAX): "

type options struct {
	airportsFile string
	chartFile    string
	logLevel     string
	jsonOutput   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	defaults := config.DataConfig{AirportsFile: "GlobalAirportDatabase.txt", FareChartFile: "AeroplanChart.csv"}
	if cfg, err := config.Load(); err == nil {
		defaults = cfg.DataConfig
	}

	root := &cobra.Command{
		Use:          "awardcalc",
		Short:        "Great-circle distances and award chart prices for multi-leg routes",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(logger.Config{Level: opts.logLevel, Format: "text", Output: cmd.ErrOrStderr()})
		},
	}
	root.PersistentFlags().StringVar(&opts.airportsFile, "airports", defaults.AirportsFile, "airport database file or URL")
	root.PersistentFlags().StringVar(&opts.chartFile, "chart", defaults.FareChartFile, "award chart CSV file or URL")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "print results as JSON")

	load := func(ctx context.Context) (*calculator.Calculator, error) {
		cfg := defaults
		cfg.AirportsFile = opts.airportsFile
		cfg.FareChartFile = opts.chartFile
		return calculator.Load(ctx, cfg, nil)
	}

	quoteCmd := &cobra.Command{
		Use:   "quote [ROUTE]",
		Short: "Price a route such as YYZ-YHZ-LAX; prompts when ROUTE is omitted",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			route, err := routeArg(cmd, args)
			if err != nil {
				return err
			}
			calc, err := load(cmd.Context())
			if err != nil {
				return err
			}
			plan, err := calc.Quote(route)
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), plan)
			}
			printQuote(cmd.OutOrStdout(), plan)
			return nil
		},
	}

	distanceCmd := &cobra.Command{
		Use:   "distance ROUTE",
		Short: "Print segment and total distances for a route",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			calc, err := load(cmd.Context())
			if err != nil {
				return err
			}
			plan, err := calc.Distance(args[0])
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), plan)
			}
			printDistances(cmd.OutOrStdout(), plan)
			return nil
		},
	}

	regionCmd := &cobra.Command{
		Use:   "region LAT LON",
		Short: "Print the region containing a coordinate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseCoordinates(args[0], args[1])
			if err != nil {
				return err
			}
			name, ok := regions.Default().Resolve(p)
			if !ok {
				name = "none"
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "awardcalc", buildinfo.String())
		},
	}

	root.AddCommand(quoteCmd, distanceCmd, regionCmd, versionCmd)
	return root
}

// routeArg returns the route argument, or reads one line from stdin after
// printing the prompt.
func routeArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	fmt.Fprint(cmd.OutOrStdout(), routePrompt)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading route: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return strings.TrimSpace(line), nil
}

func parseCoordinates(lat, lon string) (geo.Coordinates, error) {
	la, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return geo.Coordinates{}, fmt.Errorf("invalid latitude %q", lat)
	}
	lo, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return geo.Coordinates{}, fmt.Errorf("invalid longitude %q", lon)
	}
	p := geo.Coordinates{Lat: la, Lon: lo}
	if !p.IsValid() {
		return geo.Coordinates{}, fmt.Errorf("coordinates out of range: %s %s", lat, lon)
	}
	return p, nil
}

func printDistances(w io.Writer, plan itinerary.Plan) {
	p := message.NewPrinter(language.English)
	for _, s := range plan.Segments {
		if s.Missing {
			fmt.Fprintf(w, "Could not fetch coordinates for segment %s-%s\n", s.From, s.To)
			continue
		}
		p.Fprintf(w, "%s-%s distance: %.0f miles\n", s.From, s.To, s.Miles)
	}
	p.Fprintf(w, "Total distance: %.0f miles\n", plan.TotalMiles)
}

func printQuote(w io.Writer, plan itinerary.Plan) {
	printDistances(w, plan)
	fmt.Fprintf(w, "Region of first airport (%s): %s\n", plan.Origin(), regionLabel(plan.StartRegion))
	fmt.Fprintf(w, "Region of last airport (%s): %s\n", plan.Destination(), regionLabel(plan.EndRegion))
	if plan.Zone != nil {
		message.NewPrinter(language.English).Fprintf(w, "Searching for prices in zone: %s for distance: %.0f miles\n", plan.Zone.String(), plan.TotalMiles)
	}

	if !plan.Priced {
		fmt.Fprintf(w, "No pricing data found for flight from %s to %s.\n", plan.Origin(), plan.Destination())
		return
	}
	fmt.Fprintf(w, "Pricing information for flight from %s to %s:\n", plan.Origin(), plan.Destination())
	for _, f := range plan.Quote.Fares() {
		fmt.Fprintf(w, "  %s: %s points\n", f.Label, f.Points)
	}
}

func regionLabel(name string) string {
	if name == "" {
		return "none"
	}
	return name
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
