// Package fares looks up reward-points prices in a distance-banded award chart.
//
// A chart is an ordered list of rows. Each row prices travel between a start
// and end zone for a closed range of miles. Lookups are first-match-wins in
// chart order; overlapping bands are not an error.
package fares

import (
	"math"
	"strconv"
)

// Fare class labels, in the order they appear in a Quote.
const (
	LabelACEconomy             = "Air Canada Y"
	LabelACPremiumEconomy      = "Air Canada PY"
	LabelACBusiness            = "Air Canada J"
	LabelACFirst               = "Air Canada F"
	LabelPartnerEconomy        = "Partner Y"
	LabelPartnerPremiumEconomy = "Partner PY"
	LabelPartnerBusiness       = "Partner J"
	LabelPartnerFirst          = "Partner F"
)

// ZoneKey identifies an ordered pair of zones. Start and End may be equal.
type ZoneKey struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// NewZoneKey returns the key for travel from start to end.
func NewZoneKey(start, end string) ZoneKey {
	return ZoneKey{Start: start, End: end}
}

// String renders the key as "Start,End".
func (k ZoneKey) String() string {
	return k.Start + "," + k.End
}

// Band is an inclusive mileage range. End is +Inf for open-ended bands.
type Band struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Contains reports whether Start <= miles <= End.
func (b Band) Contains(miles float64) bool {
	return b.Start <= miles && miles <= b.End
}

// Unbounded reports whether the band has no upper limit.
func (b Band) Unbounded() bool {
	return math.IsInf(b.End, 1)
}

// Overlaps reports whether the two bands share at least one mileage.
func (b Band) Overlaps(o Band) bool {
	return b.Start <= o.End && o.Start <= b.End
}

// ParseBandStart parses the lower bound of a band. A plain run of ASCII
// digits is read as a number; anything else, blank included, means 0.
func ParseBandStart(s string) float64 {
	if v, ok := parseDigits(s); ok {
		return v
	}
	return 0
}

// ParseBandEnd parses the upper bound of a band. A plain run of ASCII digits
// is read as a number; anything else means no upper limit. That covers the
// chart's "2000+" notation as well as blank or malformed cells.
func ParseBandEnd(s string) float64 {
	if v, ok := parseDigits(s); ok {
		return v
	}
	return math.Inf(1)
}

func parseDigits(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Row is one line of the award chart. Band fields keep their raw text; the
// eight price fields are passed through to quotes untouched.
type Row struct {
	StartZone              string `json:"start_zone"`
	EndZone                string `json:"end_zone"`
	DistanceBandMilesStart string `json:"distance_band_miles_start"`
	DistanceBandMilesEnd   string `json:"distance_band_miles_end"`

	ACEconomy             string `json:"ac_economy"`
	ACPremiumEconomy      string `json:"ac_premium_economy"`
	ACBusiness            string `json:"ac_business"`
	ACFirst               string `json:"ac_first"`
	PartnerEconomy        string `json:"partner_economy"`
	PartnerPremiumEconomy string `json:"partner_premium_economy"`
	PartnerBusiness       string `json:"partner_business"`
	PartnerFirst          string `json:"partner_first"`
}

// Zone returns the row's zone key.
func (r Row) Zone() ZoneKey {
	return NewZoneKey(r.StartZone, r.EndZone)
}

// Band returns the row's parsed distance band.
func (r Row) Band() Band {
	return Band{
		Start: ParseBandStart(r.DistanceBandMilesStart),
		End:   ParseBandEnd(r.DistanceBandMilesEnd),
	}
}

// Quote returns the row's prices.
func (r Row) Quote() Quote {
	return Quote{
		ACEconomy:             r.ACEconomy,
		ACPremiumEconomy:      r.ACPremiumEconomy,
		ACBusiness:            r.ACBusiness,
		ACFirst:               r.ACFirst,
		PartnerEconomy:        r.PartnerEconomy,
		PartnerPremiumEconomy: r.PartnerPremiumEconomy,
		PartnerBusiness:       r.PartnerBusiness,
		PartnerFirst:          r.PartnerFirst,
	}
}

// Quote holds the points price for each cabin on the primary carrier and on
// partner carriers, exactly as written in the chart.
type Quote struct {
	ACEconomy             string `json:"ac_economy"`
	ACPremiumEconomy      string `json:"ac_premium_economy"`
	ACBusiness            string `json:"ac_business"`
	ACFirst               string `json:"ac_first"`
	PartnerEconomy        string `json:"partner_economy"`
	PartnerPremiumEconomy string `json:"partner_premium_economy"`
	PartnerBusiness       string `json:"partner_business"`
	PartnerFirst          string `json:"partner_first"`
}

// Fare is a single labelled price.
type Fare struct {
	Label  string `json:"label"`
	Points string `json:"points"`
}

// Fares returns the prices in display order.
func (q Quote) Fares() []Fare {
	return []Fare{
		{LabelACEconomy, q.ACEconomy},
		{LabelACPremiumEconomy, q.ACPremiumEconomy},
		{LabelACBusiness, q.ACBusiness},
		{LabelACFirst, q.ACFirst},
		{LabelPartnerEconomy, q.PartnerEconomy},
		{LabelPartnerPremiumEconomy, q.PartnerPremiumEconomy},
		{LabelPartnerBusiness, q.PartnerBusiness},
		{LabelPartnerFirst, q.PartnerFirst},
	}
}

// Map returns the prices keyed by fare class label.
func (q Quote) Map() map[string]string {
	fares := q.Fares()
	m := make(map[string]string, len(fares))
	for _, f := range fares {
		m[f.Label] = f.Points
	}
	return m
}

// Lookup scans rows in order and returns the quote of the first row whose
// zone key is (start, end) and whose band contains distance. The boolean is
// false when no row matches. rows is not modified.
func Lookup(rows []Row, start, end string, distance float64) (Quote, bool) {
	key := NewZoneKey(start, end)
	for _, r := range rows {
		if r.Zone() == key && r.Band().Contains(distance) {
			return r.Quote(), true
		}
	}
	return Quote{}, false
}
