package regions

import (
	"fmt"
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/gilby125/award-distance/pkg/geo"
)

const (
	dimensions  = 2
	minChildren = 2
	maxChildren = 8
	// queryTolerance pads the query point so boxes touching it on an edge still intersect.
	queryTolerance = 1e-9
	minExtent      = 1e-9
)

// boxItem wraps a region's bounding box for R-Tree indexing.
type boxItem struct {
	order int
	rect  *rtreego.Rect
}

func (b *boxItem) Bounds() *rtreego.Rect {
	return b.rect
}

// Index resolves points against a Set using an R-Tree of region bounding
// boxes to skip polygons that cannot contain the point. Results are
// identical to Set.Resolve.
type Index struct {
	set  Set
	tree *rtreego.Rtree
}

// NewIndex builds an index over a copy of set.
func NewIndex(set Set) (*Index, error) {
	idx := &Index{
		set:  set.Clone(),
		tree: rtreego.NewTree(dimensions, minChildren, maxChildren),
	}
	for i, r := range idx.set {
		if len(r.Polygon) == 0 {
			continue
		}
		b := r.Polygon.Bounds()
		rect, err := rtreego.NewRect(
			rtreego.Point{b.Min.Lat, b.Min.Lon},
			[]float64{
				math.Max(b.Max.Lat-b.Min.Lat, minExtent),
				math.Max(b.Max.Lon-b.Min.Lon, minExtent),
			},
		)
		if err != nil {
			return nil, fmt.Errorf("invalid bounds for region %q: %w", r.Name, err)
		}
		idx.tree.Insert(&boxItem{order: i, rect: rect})
	}
	return idx, nil
}

// Set returns a copy of the indexed regions.
func (idx *Index) Set() Set {
	return idx.set.Clone()
}

// Resolve returns the first region, in set order, whose polygon contains p.
func (idx *Index) Resolve(p geo.Coordinates) (string, bool) {
	query := rtreego.Point{p.Lat, p.Lon}.ToRect(queryTolerance)
	hits := idx.tree.SearchIntersect(query)
	if len(hits) == 0 {
		return "", false
	}

	candidates := make([]int, 0, len(hits))
	for _, h := range hits {
		if item, ok := h.(*boxItem); ok {
			candidates = append(candidates, item.order)
		}
	}
	sort.Ints(candidates)

	for _, i := range candidates {
		r := idx.set[i]
		if r.Polygon.Contains(p) {
			return r.Name, true
		}
	}
	return "", false
}
