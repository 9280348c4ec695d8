package geo

import "math"

// Polygon is a closed ring of coordinates. The last vertex implicitly
// connects back to the first, so the ring does not need to repeat it.
type Polygon []Coordinates

// Contains reports whether p lies inside the polygon using ray casting.
//
// The ray is cast along the point's latitude toward increasing longitude.
// An edge is counted when p.Lat is in (min, max] of the edge latitudes, which
// keeps a shared vertex from being counted twice and means edges with zero
// latitude extent are never counted. Points exactly on an edge or vertex get
// whatever answer the crossing count gives.
//
// Polygons with fewer than three vertices contain nothing.
func (poly Polygon) Contains(p Coordinates) bool {
	n := len(poly)
	if n < 3 {
		return false
	}

	inside := false
	a := poly[n-1]
	for _, b := range poly {
		if p.Lat > math.Min(a.Lat, b.Lat) && p.Lat <= math.Max(a.Lat, b.Lat) && p.Lon <= math.Max(a.Lon, b.Lon) {
			// a.Lat != b.Lat here: the latitude guard above cannot hold for a flat edge.
			xinters := (p.Lat-a.Lat)*(b.Lon-a.Lon)/(b.Lat-a.Lat) + a.Lon
			if a.Lon == b.Lon || p.Lon <= xinters {
				inside = !inside
			}
		}
		a = b
	}
	return inside
}

// Contains reports whether p lies inside poly.
func Contains(p Coordinates, poly Polygon) bool {
	return poly.Contains(p)
}

// Bounds returns the smallest lat/lon box enclosing the polygon.
// The zero Box is returned for an empty polygon.
func (poly Polygon) Bounds() Box {
	if len(poly) == 0 {
		return Box{}
	}
	b := Box{Min: poly[0], Max: poly[0]}
	for _, c := range poly[1:] {
		b.Min.Lat = math.Min(b.Min.Lat, c.Lat)
		b.Min.Lon = math.Min(b.Min.Lon, c.Lon)
		b.Max.Lat = math.Max(b.Max.Lat, c.Lat)
		b.Max.Lon = math.Max(b.Max.Lon, c.Lon)
	}
	return b
}

// Box is an axis-aligned latitude/longitude rectangle.
type Box struct {
	Min Coordinates
	Max Coordinates
}

// Contains reports whether p lies inside the box, edges included.
func (b Box) Contains(p Coordinates) bool {
	return p.Lat >= b.Min.Lat && p.Lat <= b.Max.Lat &&
		p.Lon >= b.Min.Lon && p.Lon <= b.Max.Lon
}

// Clone returns a copy of the polygon that shares no memory with poly.
func (poly Polygon) Clone() Polygon {
	if poly == nil {
		return nil
	}
	out := make(Polygon, len(poly))
	copy(out, poly)
	return out
}
