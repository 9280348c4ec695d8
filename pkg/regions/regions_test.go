package regions

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gilby125/award-distance/pkg/geo"
)

func TestDefault_ResolveKnownPoints(t *testing.T) {
	set := Default()

	tests := []struct {
		name   string
		point  geo.Coordinates
		region string
		found  bool
	}{
		{"Ottawa valley", geo.Coordinates{Lat: 45.0, Lon: -75.0}, NorthAmerica, true},
		{"YYZ", geo.Coordinates{Lat: 43.6777, Lon: -79.6248}, NorthAmerica, true},
		{"LAX", geo.Coordinates{Lat: 33.9416, Lon: -118.4085}, NorthAmerica, true},
		{"MEX", geo.Coordinates{Lat: 19.43, Lon: -99.07}, NorthAmerica, true},
		{"HNL", geo.Coordinates{Lat: 21.32, Lon: -157.92}, NorthAmerica, true},
		{"LHR", geo.Coordinates{Lat: 51.47, Lon: -0.4543}, Atlantic, true},
		{"CDG", geo.Coordinates{Lat: 49.0, Lon: 2.55}, Atlantic, true},
		{"JNB", geo.Coordinates{Lat: -26.13, Lon: 28.24}, Atlantic, true},
		{"DEL", geo.Coordinates{Lat: 28.56, Lon: 77.1}, Atlantic, true},
		{"East Africa", geo.Coordinates{Lat: 0.0, Lon: 40.0}, Atlantic, true},
		{"NRT", geo.Coordinates{Lat: 35.772, Lon: 140.3929}, Pacific, true},
		{"SYD", geo.Coordinates{Lat: -33.94, Lon: 151.17}, Pacific, true},
		{"GRU", geo.Coordinates{Lat: -23.43, Lon: -46.47}, SouthAmerica, true},
		{"BOG", geo.Coordinates{Lat: 4.70, Lon: -74.14}, SouthAmerica, true},
		{"Antarctica", geo.Coordinates{Lat: -80, Lon: 0}, "", false},
		{"eastern Pacific", geo.Coordinates{Lat: 0, Lon: -140}, "", false},
		{"mid Atlantic", geo.Coordinates{Lat: 35, Lon: -40}, "", false},
		{"North Pole", geo.Coordinates{Lat: 89, Lon: 0}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, ok := set.Resolve(tt.point)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.region, name)

			name, ok = Resolve(tt.point, set)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.region, name)
		})
	}
}

func TestSet_FirstMatchWins(t *testing.T) {
	big := geo.Polygon{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 10}, {Lat: 10, Lon: 10}, {Lat: 10, Lon: 0}}
	small := geo.Polygon{{Lat: 4, Lon: 4}, {Lat: 4, Lon: 6}, {Lat: 6, Lon: 6}, {Lat: 6, Lon: 4}}
	p := geo.Coordinates{Lat: 5, Lon: 5}

	name, ok := Set{{"Big", big}, {"Small", small}}.Resolve(p)
	require.True(t, ok)
	assert.Equal(t, "Big", name)

	name, ok = Set{{"Small", small}, {"Big", big}}.Resolve(p)
	require.True(t, ok)
	assert.Equal(t, "Small", name)
}

func TestSet_Empty(t *testing.T) {
	name, ok := Set{}.Resolve(geo.Coordinates{Lat: 45, Lon: -75})
	assert.False(t, ok)
	assert.Empty(t, name)
}

func TestDefault_OrderAndNames(t *testing.T) {
	assert.Equal(t, []string{NorthAmerica, Atlantic, Pacific, SouthAmerica}, Default().Names())

	r, ok := Default().Lookup(Pacific)
	require.True(t, ok)
	assert.NotEmpty(t, r.Polygon)

	_, ok = Default().Lookup("Europe")
	assert.False(t, ok)
}

func TestDefault_ReturnsCopy(t *testing.T) {
	a := Default()
	a[0].Name = "mutated"
	a[0].Polygon[0] = geo.Coordinates{}

	b := Default()
	assert.Equal(t, NorthAmerica, b[0].Name)
	assert.NotEqual(t, geo.Coordinates{}, b[0].Polygon[0])
}

func TestIndex_MatchesLinearScan(t *testing.T) {
	set := Default()
	idx, err := NewIndex(set)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 5000; i++ {
		p := geo.Coordinates{
			Lat: r.Float64()*180 - 90,
			Lon: r.Float64()*360 - 180,
		}
		wantName, wantOK := set.Resolve(p)
		gotName, gotOK := idx.Resolve(p)
		require.Equal(t, wantOK, gotOK, "point %v", p)
		require.Equal(t, wantName, gotName, "point %v", p)
	}
}

func TestIndex_KnownPoints(t *testing.T) {
	idx, err := NewIndex(Default())
	require.NoError(t, err)

	name, ok := idx.Resolve(geo.Coordinates{Lat: 45.0, Lon: -75.0})
	require.True(t, ok)
	assert.Equal(t, NorthAmerica, name)

	_, ok = idx.Resolve(geo.Coordinates{Lat: -80, Lon: 0})
	assert.False(t, ok)
}

func TestIndex_OverlapKeepsSetOrder(t *testing.T) {
	big := geo.Polygon{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 10}, {Lat: 10, Lon: 10}, {Lat: 10, Lon: 0}}
	small := geo.Polygon{{Lat: 4, Lon: 4}, {Lat: 4, Lon: 6}, {Lat: 6, Lon: 6}, {Lat: 6, Lon: 4}}

	idx, err := NewIndex(Set{{"Small", small}, {"Big", big}})
	require.NoError(t, err)

	name, ok := idx.Resolve(geo.Coordinates{Lat: 5, Lon: 5})
	require.True(t, ok)
	assert.Equal(t, "Small", name)

	name, ok = idx.Resolve(geo.Coordinates{Lat: 1, Lon: 1})
	require.True(t, ok)
	assert.Equal(t, "Big", name)
}

func TestIndex_SkipsEmptyPolygons(t *testing.T) {
	idx, err := NewIndex(Set{{Name: "Nothing"}})
	require.NoError(t, err)
	_, ok := idx.Resolve(geo.Coordinates{Lat: 0, Lon: 0})
	assert.False(t, ok)
	assert.Equal(t, []string{"Nothing"}, idx.Set().Names())
}

func BenchmarkSetResolve(b *testing.B) {
	set := Default()
	p := geo.Coordinates{Lat: -23.43, Lon: -46.47}
	for i := 0; i < b.N; i++ {
		set.Resolve(p)
	}
}

func BenchmarkIndexResolve(b *testing.B) {
	idx, err := NewIndex(Default())
	if err != nil {
		b.Fatal(err)
	}
	p := geo.Coordinates{Lat: -23.43, Lon: -46.47}
	for i := 0; i < b.N; i++ {
		idx.Resolve(p)
	}
}
