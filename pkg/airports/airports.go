// Package airports maps IATA airport codes to their coordinates.
//
// The directory is loaded from a GlobalAirportDatabase file, a colon-separated
// text format:
//
//	ICAO:IATA:NAME:CITY:COUNTRY:LATD:LATM:LATS:LATH:LOND:LONM:LONS:LONH:ALT:LAT:LON
//
// Only the IATA code and the trailing decimal latitude and longitude are
// required; the descriptive fields are kept when present.
package airports

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/gilby125/award-distance/pkg/geo"
	"github.com/gilby125/award-distance/pkg/source"
)

// Airport contains an airport's code, descriptive data and location.
type Airport struct {
	Code     string          `json:"code"`
	ICAO     string          `json:"icao,omitempty"`
	Name     string          `json:"name,omitempty"`
	City     string          `json:"city,omitempty"`
	Country  string          `json:"country,omitempty"`
	Location geo.Coordinates `json:"location"`
}

// Directory is a read-only set of airports keyed by uppercase IATA code.
type Directory struct {
	byCode map[string]Airport
}

// NewDirectory builds a directory from airports. Later entries replace
// earlier ones with the same code.
func NewDirectory(airports ...Airport) *Directory {
	d := &Directory{byCode: make(map[string]Airport, len(airports))}
	for _, a := range airports {
		a.Code = normalize(a.Code)
		if a.Code == "" {
			continue
		}
		d.byCode[a.Code] = a
	}
	return d
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Len returns the number of airports.
func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.byCode)
}

// Lookup returns the coordinates for an IATA code. The code is matched
// case-insensitively.
func (d *Directory) Lookup(code string) (geo.Coordinates, bool) {
	a, ok := d.Airport(code)
	return a.Location, ok
}

// Airport returns the full record for an IATA code.
func (d *Directory) Airport(code string) (Airport, bool) {
	if d == nil {
		return Airport{}, false
	}
	a, ok := d.byCode[normalize(code)]
	return a, ok
}

// Codes returns every code in the directory, sorted.
func (d *Directory) Codes() []string {
	if d == nil {
		return nil
	}
	codes := make([]string, 0, len(d.byCode))
	for c := range d.byCode {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// Parse reads a GlobalAirportDatabase file. Lines without an IATA code
// ("N/A" or blank) or whose decimal coordinates do not parse are skipped.
func Parse(r io.Reader) (*Directory, error) {
	d := &Directory{byCode: make(map[string]Airport)}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		a, ok := parseLine(sc.Text())
		if !ok {
			continue
		}
		d.byCode[a.Code] = a
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read airports: %w", err)
	}
	return d, nil
}

func parseLine(line string) (Airport, bool) {
	fields := strings.Split(strings.TrimRight(line, "\r"), ":")
	if len(fields) < 4 {
		return Airport{}, false
	}

	code := normalize(fields[1])
	if code == "" || code == "N/A" {
		return Airport{}, false
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(fields[len(fields)-2]), 64)
	if err != nil {
		return Airport{}, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(fields[len(fields)-1]), 64)
	if err != nil {
		return Airport{}, false
	}

	a := Airport{
		Code:     code,
		ICAO:     strings.TrimSpace(fields[0]),
		Location: geo.Coordinates{Lat: lat, Lon: lon},
	}
	// descriptive fields only exist in full-width records
	if len(fields) >= 16 {
		a.Name = strings.TrimSpace(fields[2])
		a.City = strings.TrimSpace(fields[3])
		a.Country = strings.TrimSpace(fields[4])
	}
	return a, true
}

// LoadFile loads a directory from a file path or http(s) URL.
func LoadFile(ctx context.Context, opener *source.Opener, location string) (*Directory, error) {
	rc, err := opener.Open(ctx, location)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	d, err := Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("load airports %s: %w", location, err)
	}
	return d, nil
}
