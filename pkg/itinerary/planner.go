package itinerary

import (
	"github.com/gilby125/award-distance/pkg/fares"
	"github.com/gilby125/award-distance/pkg/geo"
	"github.com/gilby125/award-distance/pkg/metrics"
	"github.com/gilby125/award-distance/pkg/regions"
)

// Locator finds airport coordinates by IATA code.
type Locator interface {
	Lookup(code string) (geo.Coordinates, bool)
}

// Pricer finds the award quote for a zone pair and distance.
type Pricer interface {
	Lookup(start, end string, distance float64) (fares.Quote, bool)
}

// Segment is one leg of a route.
type Segment struct {
	From    string  `json:"from"`
	To      string  `json:"to"`
	Miles   float64 `json:"miles"`
	Missing bool    `json:"missing,omitempty"`
}

// Plan is the result of planning a route.
type Plan struct {
	Route       []string       `json:"route"`
	Segments    []Segment      `json:"segments"`
	TotalMiles  float64        `json:"total_miles"`
	StartRegion string         `json:"start_region,omitempty"`
	EndRegion   string         `json:"end_region,omitempty"`
	Zone        *fares.ZoneKey `json:"zone,omitempty"`
	Quote       *fares.Quote   `json:"quote,omitempty"`
	Priced      bool           `json:"priced"`
}

// Origin returns the first airport code.
func (p Plan) Origin() string {
	if len(p.Route) == 0 {
		return ""
	}
	return p.Route[0]
}

// Destination returns the last airport code.
func (p Plan) Destination() string {
	if len(p.Route) == 0 {
		return ""
	}
	return p.Route[len(p.Route)-1]
}

// MissingSegments returns the segments whose distance could not be computed.
func (p Plan) MissingSegments() []Segment {
	var out []Segment
	for _, s := range p.Segments {
		if s.Missing {
			out = append(out, s)
		}
	}
	return out
}

// Planner combines the airport directory, region resolver and fare chart.
// Fares and Metrics are optional.
type Planner struct {
	Airports Locator
	Regions  regions.Resolver
	Fares    Pricer
	Metrics  metrics.Recorder
}

// Distance computes the segments and total distance of a route without
// resolving regions or prices. Segments with an unknown airport are marked
// Missing and add nothing to the total.
func (pl *Planner) Distance(codes []string) Plan {
	plan := Plan{Route: append([]string(nil), codes...)}
	for i := 0; i+1 < len(codes); i++ {
		seg := Segment{From: codes[i], To: codes[i+1]}
		from, okFrom := pl.Airports.Lookup(seg.From)
		to, okTo := pl.Airports.Lookup(seg.To)
		if okFrom && okTo {
			seg.Miles = geo.DistanceBetween(from, to)
			plan.TotalMiles += seg.Miles
		} else {
			seg.Missing = true
			pl.observeMissing()
		}
		plan.Segments = append(plan.Segments, seg)
	}
	return plan
}

// Plan computes distances, resolves the regions of the first and last
// airports and looks up a quote for the total distance. A quote is only
// looked up when both end regions resolve.
func (pl *Planner) Plan(codes []string) Plan {
	plan := pl.Distance(codes)
	if len(codes) == 0 {
		return plan
	}

	start, okStart := pl.resolve(codes[0])
	end, okEnd := pl.resolve(codes[len(codes)-1])
	plan.StartRegion = start
	plan.EndRegion = end

	if !okStart || !okEnd {
		return plan
	}
	zone := fares.NewZoneKey(start, end)
	plan.Zone = &zone

	if pl.Fares == nil {
		return plan
	}
	q, ok := pl.Fares.Lookup(zone.Start, zone.End, plan.TotalMiles)
	if pl.Metrics != nil {
		pl.Metrics.ObserveFareLookup(ok)
	}
	if ok {
		plan.Quote = &q
		plan.Priced = true
	}
	return plan
}

func (pl *Planner) resolve(code string) (string, bool) {
	c, ok := pl.Airports.Lookup(code)
	if !ok {
		return "", false
	}
	name, ok := pl.Regions.Resolve(c)
	if pl.Metrics != nil {
		pl.Metrics.ObserveRegion(name, ok)
	}
	return name, ok
}

func (pl *Planner) observeMissing() {
	if pl.Metrics != nil {
		pl.Metrics.ObserveMissingAirport()
	}
}
