package registry

import (
	"errors"
	"math"
	"testing"

	"github.com/matryer/is"

	"github.com/opentransit/region-mgmt/pkg/types"
)

func TestDistanceBetweenCoincidentPointsIsZero(t *testing.T) {
	is := is.New(t)
	is.Equal(DistanceBetween(47.6062, -122.3321, 47.6062, -122.3321), 0.0)
}

func TestDistanceBetweenKnownPoints(t *testing.T) {
	is := is.New(t)

	// geodesic from Land's End to Dunnet Head, a classic survey baseline
	d := DistanceBetween(50.06632, -5.71475, 58.64402, -3.07009)
	is.True(math.Abs(d-969954.114) < 0.5)
}

func TestDistanceBetweenIsSymmetric(t *testing.T) {
	is := is.New(t)

	ab := DistanceBetween(47.6062, -122.3321, 27.9506, -82.4572)
	ba := DistanceBetween(27.9506, -82.4572, 47.6062, -122.3321)
	is.True(math.Abs(ab-ba) < 0.001)
}

func TestDistanceToRegionUsesTheClosestBounds(t *testing.T) {
	is := is.New(t)

	region := types.Region{
		Bounds: []types.Bounds{
			{Lat: 47.6062, Lon: -122.3321},
			{Lat: 27.9506, Lon: -82.4572},
		},
	}

	// just north of Seattle, so the first bounds wins
	d, ok := DistanceToRegion(region, 47.7, -122.3321)
	is.True(ok)
	is.True(d < 12000)
}

func TestDistanceToRegionWithoutBounds(t *testing.T) {
	is := is.New(t)

	_, ok := DistanceToRegion(types.Region{}, 47.7, -122.3)
	is.True(!ok)
}

func TestSpanCoversAllBounds(t *testing.T) {
	is := is.New(t)

	region := &types.Region{
		Bounds: []types.Bounds{
			{Lat: 10, Lon: 20, LatSpan: 2, LonSpan: 4},
			{Lat: 12, Lon: 21, LatSpan: 2, LonSpan: 2},
		},
	}

	span, err := Span(region)
	is.NoErr(err)
	is.Equal(span.LatSpan, 4.0)
	is.Equal(span.LonSpan, 4.0)
	is.Equal(span.LatCenter, 11.0)
	is.Equal(span.LonCenter, 20.0)
}

func TestSpanOfSingleBoundsIsThatBounds(t *testing.T) {
	is := is.New(t)

	region := &types.Region{
		Bounds: []types.Bounds{{Lat: 47.5, Lon: -122.25, LatSpan: 0.5, LonSpan: 0.25}},
	}

	span, err := Span(region)
	is.NoErr(err)
	is.Equal(span.LatSpan, 0.5)
	is.Equal(span.LonSpan, 0.25)
	is.Equal(span.LatCenter, 47.5)
	is.Equal(span.LonCenter, -122.25)
}

func TestSpanRequiresBounds(t *testing.T) {
	is := is.New(t)

	_, err := Span(nil)
	is.True(errors.Is(err, ErrInvalidRegion))

	_, err = Span(&types.Region{})
	is.True(errors.Is(err, ErrInvalidRegion))
}

func TestLocationWithinSpan(t *testing.T) {
	is := is.New(t)

	span := &types.RegionSpan{LatSpan: 2, LonSpan: 4, LatCenter: 47, LonCenter: -122}

	within, err := LocationWithinSpan(span, 47.5, -121)
	is.NoErr(err)
	is.True(within)

	within, err = LocationWithinSpan(span, 49, -121)
	is.NoErr(err)
	is.True(!within)

	// edges are inclusive
	within, err = LocationWithinSpan(span, 48, -120)
	is.NoErr(err)
	is.True(within)
}

func TestLocationWithinSpanRejectsBadInput(t *testing.T) {
	is := is.New(t)

	_, err := LocationWithinSpan(nil, 47, -122)
	is.True(errors.Is(err, ErrInvalidSpan))

	span := &types.RegionSpan{LatSpan: 2, LonSpan: 4, LatCenter: 47, LonCenter: -122}
	_, err = LocationWithinSpan(span, 91, -122)
	is.True(errors.Is(err, ErrInvalidLocation))

	_, err = LocationWithinSpan(span, 47, -181)
	is.True(errors.Is(err, ErrInvalidLocation))
}

func TestLocationWithinRegion(t *testing.T) {
	is := is.New(t)

	region := &types.Region{
		Bounds: []types.Bounds{
			{Lat: 47.221315, Lon: -122.4051325, LatSpan: 0.33704, LonSpan: 0.440483},
			{Lat: 47.5607395, Lon: -122.1462785, LatSpan: 0.743251, LonSpan: 0.720901},
		},
	}

	// downtown Seattle
	within, err := LocationWithinRegion(region, 47.6097, -122.3331)
	is.NoErr(err)
	is.True(within)

	// Spokane is far outside the combined box
	within, err = LocationWithinRegion(region, 47.6588, -117.4260)
	is.NoErr(err)
	is.True(!within)
}
