package registry

import (
	"context"
	"math"

	"github.com/opentransit/region-mgmt/internal/pkg/infrastructure/logging"
	"github.com/opentransit/region-mgmt/pkg/types"
)

// ClosestRegion returns the region from the list whose nearest bound center
// is closest to the given location, or nil if no region qualifies.
//
// Regions that are not usable are excluded from consideration, so the result
// can actually be used by the caller. Regions without bounds are skipped as a
// data quality problem, not a failure. Ties keep the first region in input
// order.
func ClosestRegion(ctx context.Context, regions []types.Region, loc *types.Location, experimentalOptIn bool) *types.Region {
	if loc == nil {
		return nil
	}

	logger := logging.GetLoggerFromContext(ctx)

	minDistance := math.MaxFloat64
	var closest *types.Region

	for i := range regions {
		region := &regions[i]

		if !region.IsUsable(experimentalOptIn) {
			logger.Debug().Msgf("excluding region %s from closest region consideration", region.RegionName)
			continue
		}

		distance, ok := DistanceToRegion(*region, loc.Latitude, loc.Longitude)
		if !ok {
			logger.Error().Msgf("could not measure distance to region %s", region.RegionName)
			continue
		}

		if distance < minDistance {
			closest = region
			minDistance = distance
		}
	}

	return closest
}
