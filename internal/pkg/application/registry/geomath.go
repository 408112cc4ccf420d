package registry

import (
	"errors"
	"math"

	"github.com/opentransit/region-mgmt/pkg/types"
)

var ErrInvalidRegion = errors.New("region is nil or has no bounds")
var ErrInvalidSpan = errors.New("region span is nil")
var ErrInvalidLocation = errors.New("location is outside the valid coordinate range")

// WGS-84 ellipsoid
const (
	semiMajorAxis = 6378137.0
	semiMinorAxis = 6356752.3142
	flattening    = 1.0 / 298.257223563
)

// DistanceBetween returns the geodesic surface distance in meters between
// two points, using the inverse Vincenty formula on the WGS-84 ellipsoid.
// Accuracy is well below a meter for points within a few thousand km.
func DistanceBetween(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 == lat2 && lon1 == lon2 {
		return 0.0
	}

	const degToRad = math.Pi / 180.0

	L := (lon2 - lon1) * degToRad
	u1 := math.Atan((1 - flattening) * math.Tan(lat1*degToRad))
	u2 := math.Atan((1 - flattening) * math.Tan(lat2*degToRad))

	sinU1, cosU1 := math.Sincos(u1)
	sinU2, cosU2 := math.Sincos(u2)

	lambda := L

	var sinSigma, cosSigma, sigma, cosSqAlpha, cos2SigmaM float64

	for i := 0; i < 20; i++ {
		sinLambda, cosLambda := math.Sincos(lambda)

		sinSigma = math.Sqrt((cosU2*sinLambda)*(cosU2*sinLambda) +
			(cosU1*sinU2-sinU1*cosU2*cosLambda)*(cosU1*sinU2-sinU1*cosU2*cosLambda))
		if sinSigma == 0 {
			return 0.0 // coincident points
		}

		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma = math.Atan2(sinSigma, cosSigma)

		sinAlpha := cosU1 * cosU2 * sinLambda / sinSigma
		cosSqAlpha = 1 - sinAlpha*sinAlpha

		if cosSqAlpha != 0 {
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cosSqAlpha
		} else {
			cos2SigmaM = 0 // equatorial line
		}

		C := flattening / 16 * cosSqAlpha * (4 + flattening*(4-3*cosSqAlpha))

		prev := lambda
		lambda = L + (1-C)*flattening*sinAlpha*
			(sigma+C*sinSigma*(cos2SigmaM+C*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))

		if math.Abs(lambda-prev) < 1e-12 {
			break
		}
	}

	uSq := cosSqAlpha * (semiMajorAxis*semiMajorAxis - semiMinorAxis*semiMinorAxis) /
		(semiMinorAxis * semiMinorAxis)
	A := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	B := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))

	deltaSigma := B * sinSigma * (cos2SigmaM + B/4*
		(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
			B/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))

	return semiMinorAxis * A * (sigma - deltaSigma)
}

// DistanceToRegion returns the distance in meters from the given location to
// the center of the closest of the region's bounds. The second return value
// is false when the region has no bounds to measure against.
func DistanceToRegion(region types.Region, lat, lon float64) (float64, bool) {
	if len(region.Bounds) == 0 {
		return 0, false
	}

	minDistance := math.MaxFloat64

	for _, b := range region.Bounds {
		d := DistanceBetween(lat, lon, b.Lat, b.Lon)
		if d < minDistance {
			minDistance = d
		}
	}

	return minDistance, true
}

// Span returns the center and lat/lon span of the bounding box covering all
// of the region's bounds. This is fairly simplistic: the box is the union of
// the individual boxes, and spans crossing the antimeridian are not wrapped.
func Span(region *types.Region) (types.RegionSpan, error) {
	if region == nil || len(region.Bounds) == 0 {
		return types.RegionSpan{}, ErrInvalidRegion
	}

	latMin := 90.0
	latMax := -90.0
	lonMin := 180.0
	lonMax := -180.0

	for _, b := range region.Bounds {
		latSpanHalf := b.LatSpan / 2.0
		if b.Lat-latSpanHalf < latMin {
			latMin = b.Lat - latSpanHalf
		}
		if b.Lat+latSpanHalf > latMax {
			latMax = b.Lat + latSpanHalf
		}

		lonSpanHalf := b.LonSpan / 2.0
		if b.Lon-lonSpanHalf < lonMin {
			lonMin = b.Lon - lonSpanHalf
		}
		if b.Lon+lonSpanHalf > lonMax {
			lonMax = b.Lon + lonSpanHalf
		}
	}

	return types.RegionSpan{
		LatSpan:   latMax - latMin,
		LonSpan:   lonMax - lonMin,
		LatCenter: latMin + (latMax-latMin)/2.0,
		LonCenter: lonMin + (lonMax-lonMin)/2.0,
	}, nil
}

// LocationWithinSpan determines if the given location lies within the region
// span. Spans crossing the international date line are not handled.
func LocationWithinSpan(span *types.RegionSpan, lat, lon float64) (bool, error) {
	if span == nil {
		return false, ErrInvalidSpan
	}

	if lat > 90 || lat < -90 || lon > 180 || lon < -180 {
		return false, ErrInvalidLocation
	}

	minLat := span.LatCenter - span.LatSpan/2
	maxLat := span.LatCenter + span.LatSpan/2
	minLon := span.LonCenter - span.LonSpan/2
	maxLon := span.LonCenter + span.LonSpan/2

	return minLat <= lat && lat <= maxLat && minLon <= lon && lon <= maxLon, nil
}

// LocationWithinRegion determines if the given location lies within the
// bounding box of the region.
func LocationWithinRegion(region *types.Region, lat, lon float64) (bool, error) {
	span, err := Span(region)
	if err != nil {
		return false, err
	}

	return LocationWithinSpan(&span, lat, lon)
}
