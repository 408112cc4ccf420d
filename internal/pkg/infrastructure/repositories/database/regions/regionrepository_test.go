package regions

import (
	"context"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/opentransit/region-mgmt/internal/pkg/infrastructure/repositories/database"
	"github.com/opentransit/region-mgmt/pkg/types"
)

func TestReplaceAllAndGetAllRoundTrip(t *testing.T) {
	is, ctx, repo := testSetup(t, false)

	err := repo.ReplaceAll(ctx, testCatalog())
	is.NoErr(err)

	stored, err := repo.GetAll(ctx)
	is.NoErr(err)
	is.Equal(len(stored), 2)

	is.Equal(stored[0].ID, int64(1))
	is.Equal(stored[0].RegionName, "Puget Sound")
	is.Equal(stored[0].ObaBaseURL, "https://api.pugetsound.onebusaway.org/")
	is.Equal(len(stored[0].Bounds), 2)
	is.Equal(stored[0].Bounds[0].Lat, 47.221315)
	is.Equal(stored[1].ID, int64(2))
}

func TestReplaceAllExcludesUnusableRegions(t *testing.T) {
	is, ctx, repo := testSetup(t, false)

	catalog := testCatalog()
	catalog = append(catalog,
		types.Region{ID: 7, RegionName: "inactive", Active: false, SupportsObaDiscoveryAPIs: true, SupportsObaRealtimeAPIs: true},
		types.Region{ID: 8, RegionName: "experimental", Active: true, Experimental: true, SupportsObaDiscoveryAPIs: true, SupportsObaRealtimeAPIs: true},
		types.Region{ID: 9, RegionName: "no realtime", Active: true, SupportsObaDiscoveryAPIs: true},
	)

	err := repo.ReplaceAll(ctx, catalog)
	is.NoErr(err)

	stored, err := repo.GetAll(ctx)
	is.NoErr(err)
	is.Equal(len(stored), 2)
}

func TestReplaceAllPersistsExperimentalRegionsWhenOptedIn(t *testing.T) {
	is, ctx, repo := testSetup(t, true)

	catalog := append(testCatalog(),
		types.Region{ID: 8, RegionName: "experimental", Active: true, Experimental: true, SupportsObaDiscoveryAPIs: true, SupportsObaRealtimeAPIs: true},
	)

	err := repo.ReplaceAll(ctx, catalog)
	is.NoErr(err)

	stored, err := repo.GetAll(ctx)
	is.NoErr(err)
	is.Equal(len(stored), 3)
	is.Equal(stored[2].RegionName, "experimental")
}

func TestReplaceAllOverwritesThePreviousCatalog(t *testing.T) {
	is, ctx, repo := testSetup(t, false)

	err := repo.ReplaceAll(ctx, testCatalog())
	is.NoErr(err)

	err = repo.ReplaceAll(ctx, testCatalog()[:1])
	is.NoErr(err)

	stored, err := repo.GetAll(ctx)
	is.NoErr(err)
	is.Equal(len(stored), 1)
	is.Equal(stored[0].RegionName, "Puget Sound")
}

func TestReplaceAllWithEmptyCatalogClearsTheStore(t *testing.T) {
	is, ctx, repo := testSetup(t, false)

	err := repo.ReplaceAll(ctx, testCatalog())
	is.NoErr(err)

	err = repo.ReplaceAll(ctx, nil)
	is.NoErr(err)

	stored, err := repo.GetAll(ctx)
	is.NoErr(err)
	is.Equal(len(stored), 0)
}

func testSetup(t *testing.T, experimentalOptIn bool) (*is.I, context.Context, RegionRepository) {
	is := is.New(t)

	repo, err := NewRegionRepository(database.NewSQLiteConnector(zerolog.Nop()), experimentalOptIn)
	is.NoErr(err)

	// the shared in memory database survives between tests
	err = repo.ReplaceAll(context.Background(), nil)
	is.NoErr(err)

	return is, context.Background(), repo
}

func testCatalog() []types.Region {
	return []types.Region{
		{
			ID: 1, RegionName: "Puget Sound", Active: true,
			ObaBaseURL:               "https://api.pugetsound.onebusaway.org/",
			Language:                 "en_US",
			SupportsObaDiscoveryAPIs: true, SupportsObaRealtimeAPIs: true,
			Bounds: []types.Bounds{
				{Lat: 47.221315, Lon: -122.4051325, LatSpan: 0.33704, LonSpan: 0.440483},
				{Lat: 47.5607395, Lon: -122.1462785, LatSpan: 0.743251, LonSpan: 0.720901},
			},
		},
		{
			ID: 2, RegionName: "Tampa Bay", Active: true,
			ObaBaseURL:               "https://api.tampa.onebusaway.org/api/",
			SupportsObaDiscoveryAPIs: true, SupportsObaRealtimeAPIs: true,
			Bounds: []types.Bounds{
				{Lat: 27.9769105, Lon: -82.445851, LatSpan: 0.542461, LonSpan: 0.576358},
			},
		},
	}
}
