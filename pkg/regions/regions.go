// Package regions classifies coordinates into named award-chart regions.
//
// A Set is an ordered list of named polygons. Resolution walks the set in
// order and returns the first region whose polygon contains the point, so
// overlapping polygons are settled by position, not by size or name.
package regions

import (
	"github.com/gilby125/award-distance/pkg/geo"
)

// Region names of the built-in chart.
const (
	NorthAmerica = "North America"
	Atlantic     = "Atlantic"
	Pacific      = "Pacific"
	SouthAmerica = "South America"
)

// Region is a named polygon.
type Region struct {
	Name    string      `json:"name"`
	Polygon geo.Polygon `json:"polygon"`
}

// Resolver maps a coordinate to a region name. Set and *Index both satisfy it.
type Resolver interface {
	Resolve(p geo.Coordinates) (string, bool)
}

// Set is an ordered collection of regions. The order is the resolution order.
type Set []Region

// Resolve returns the name of the first region in the set containing p.
// The boolean is false when no region contains p, which is a normal outcome.
func (s Set) Resolve(p geo.Coordinates) (string, bool) {
	for _, r := range s {
		if r.Polygon.Contains(p) {
			return r.Name, true
		}
	}
	return "", false
}

// Resolve returns the name of the first region in set containing p.
func Resolve(p geo.Coordinates, set Set) (string, bool) {
	return set.Resolve(p)
}

// Names returns the region names in resolution order.
func (s Set) Names() []string {
	names := make([]string, len(s))
	for i, r := range s {
		names[i] = r.Name
	}
	return names
}

// Lookup returns the region with the given name.
func (s Set) Lookup(name string) (Region, bool) {
	for _, r := range s {
		if r.Name == name {
			return r, true
		}
	}
	return Region{}, false
}

// Clone returns a deep copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for i, r := range s {
		out[i] = Region{Name: r.Name, Polygon: r.Polygon.Clone()}
	}
	return out
}

// Default returns the built-in region table in its fixed resolution order:
// North America, Atlantic, Pacific, South America.
// Each call returns a fresh copy, so callers cannot alter the shared table.
func Default() Set {
	return defaultSet.Clone()
}
