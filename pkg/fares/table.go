package fares

// Table is a read-only award chart indexed by zone key. Lookups return the
// same row a linear scan of the chart would.
type Table struct {
	rows   []Row
	bands  []Band
	byZone map[ZoneKey][]int
}

// NewTable builds a table over a copy of rows, keeping their order.
func NewTable(rows []Row) *Table {
	t := &Table{
		rows:   make([]Row, len(rows)),
		bands:  make([]Band, len(rows)),
		byZone: make(map[ZoneKey][]int),
	}
	copy(t.rows, rows)
	for i, r := range t.rows {
		t.bands[i] = r.Band()
		key := r.Zone()
		t.byZone[key] = append(t.byZone[key], i)
	}
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns a copy of the rows in chart order.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	return out
}

// Zones returns the distinct zone keys in order of first appearance.
func (t *Table) Zones() []ZoneKey {
	seen := make(map[ZoneKey]bool, len(t.byZone))
	zones := make([]ZoneKey, 0, len(t.byZone))
	for _, r := range t.rows {
		key := r.Zone()
		if !seen[key] {
			seen[key] = true
			zones = append(zones, key)
		}
	}
	return zones
}

// Lookup returns the quote of the first row for (start, end) whose band
// contains distance.
func (t *Table) Lookup(start, end string, distance float64) (Quote, bool) {
	row, _, ok := t.Match(start, end, distance)
	if !ok {
		return Quote{}, false
	}
	return row.Quote(), true
}

// Match is Lookup that also returns the matching row and its parsed band.
func (t *Table) Match(start, end string, distance float64) (Row, Band, bool) {
	for _, i := range t.byZone[NewZoneKey(start, end)] {
		if t.bands[i].Contains(distance) {
			return t.rows[i], t.bands[i], true
		}
	}
	return Row{}, Band{}, false
}

// Overlap describes two rows of the same zone whose bands intersect. Only
// the earlier row (First) can ever match in the overlapping range.
type Overlap struct {
	Zone   ZoneKey
	First  int
	Second int
}

// Overlaps reports pairs of rows, by index, whose bands intersect within a zone.
func (t *Table) Overlaps() []Overlap {
	var out []Overlap
	for _, key := range t.Zones() {
		idx := t.byZone[key]
		for a := 0; a < len(idx); a++ {
			for b := a + 1; b < len(idx); b++ {
				if t.bands[idx[a]].Overlaps(t.bands[idx[b]]) {
					out = append(out, Overlap{Zone: key, First: idx[a], Second: idx[b]})
				}
			}
		}
	}
	return out
}
