package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/opentransit/region-mgmt/internal/pkg/application/registry"
	"github.com/opentransit/region-mgmt/internal/pkg/infrastructure/logging"
	"github.com/opentransit/region-mgmt/internal/pkg/infrastructure/router"
	"github.com/opentransit/region-mgmt/pkg/types"
)

func TestHealthEndpoint(t *testing.T) {
	is, ts := testSetup(t, &registry.RegionRegistryMock{})
	defer ts.Close()

	resp, _ := testRequest(is, ts, http.MethodGet, "/health", "")
	is.Equal(resp.StatusCode, http.StatusNoContent)
}

func TestGetRegions(t *testing.T) {
	svc := &registry.RegionRegistryMock{
		RegionsFunc: func(ctx context.Context, forceReload bool) ([]types.Region, error) {
			return testRegions(), nil
		},
	}

	is, ts := testSetup(t, svc)
	defer ts.Close()

	resp, body := testRequest(is, ts, http.MethodGet, "/api/v0/regions", "Bearer sometoken")
	is.Equal(resp.StatusCode, http.StatusOK)

	response := types.RegionsResponse{}
	is.NoErr(json.Unmarshal([]byte(body), &response))
	is.Equal(response.Code, http.StatusOK)
	is.Equal(response.Text, "OK")
	is.Equal(len(response.Data.List), 2)
	is.Equal(response.Data.List[0].RegionName, "Puget Sound")

	is.Equal(len(svc.RegionsCalls()), 1)
	is.True(!svc.RegionsCalls()[0].ForceReload)
}

func TestGetRegionsWithForceReload(t *testing.T) {
	svc := &registry.RegionRegistryMock{
		RegionsFunc: func(ctx context.Context, forceReload bool) ([]types.Region, error) {
			return testRegions(), nil
		},
	}

	is, ts := testSetup(t, svc)
	defer ts.Close()

	resp, _ := testRequest(is, ts, http.MethodGet, "/api/v0/regions?forceReload=true", "Bearer sometoken")
	is.Equal(resp.StatusCode, http.StatusOK)

	is.Equal(len(svc.RegionsCalls()), 1)
	is.True(svc.RegionsCalls()[0].ForceReload)
}

func TestGetRegionsRequiresAToken(t *testing.T) {
	is, ts := testSetup(t, &registry.RegionRegistryMock{})
	defer ts.Close()

	resp, _ := testRequest(is, ts, http.MethodGet, "/api/v0/regions", "")
	is.Equal(resp.StatusCode, http.StatusUnauthorized)
}

func TestGetRegionsWhenCatalogIsUnavailable(t *testing.T) {
	svc := &registry.RegionRegistryMock{
		RegionsFunc: func(ctx context.Context, forceReload bool) ([]types.Region, error) {
			return nil, registry.ErrCatalogUnavailable
		},
	}

	is, ts := testSetup(t, svc)
	defer ts.Close()

	resp, _ := testRequest(is, ts, http.MethodGet, "/api/v0/regions", "Bearer sometoken")
	is.Equal(resp.StatusCode, http.StatusServiceUnavailable)
}

func TestGetClosestRegion(t *testing.T) {
	svc := &registry.RegionRegistryMock{
		ClosestRegionFunc: func(ctx context.Context, loc *types.Location) (*types.Region, error) {
			region := testRegions()[0]
			return &region, nil
		},
	}

	is, ts := testSetup(t, svc)
	defer ts.Close()

	resp, body := testRequest(is, ts, http.MethodGet, "/api/v0/regions/closest?lat=47.6097&lon=-122.3331", "Bearer sometoken")
	is.Equal(resp.StatusCode, http.StatusOK)

	region := types.Region{}
	is.NoErr(json.Unmarshal([]byte(body), &region))
	is.Equal(region.RegionName, "Puget Sound")

	is.Equal(len(svc.ClosestRegionCalls()), 1)
	is.Equal(svc.ClosestRegionCalls()[0].Loc.Latitude, 47.6097)
	is.Equal(svc.ClosestRegionCalls()[0].Loc.Longitude, -122.3331)
}

func TestGetClosestRegionRequiresCoordinates(t *testing.T) {
	is, ts := testSetup(t, &registry.RegionRegistryMock{})
	defer ts.Close()

	resp, _ := testRequest(is, ts, http.MethodGet, "/api/v0/regions/closest?lat=47.6097", "Bearer sometoken")
	is.Equal(resp.StatusCode, http.StatusBadRequest)

	resp, _ = testRequest(is, ts, http.MethodGet, "/api/v0/regions/closest", "Bearer sometoken")
	is.Equal(resp.StatusCode, http.StatusBadRequest)
}

func TestGetClosestRegionWhenNoneQualifies(t *testing.T) {
	svc := &registry.RegionRegistryMock{
		ClosestRegionFunc: func(ctx context.Context, loc *types.Location) (*types.Region, error) {
			return nil, nil
		},
	}

	is, ts := testSetup(t, svc)
	defer ts.Close()

	resp, _ := testRequest(is, ts, http.MethodGet, "/api/v0/regions/closest?lat=0&lon=0", "Bearer sometoken")
	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func testSetup(t *testing.T, svc registry.RegionRegistry) (*is.I, *httptest.Server) {
	is := is.New(t)

	ctx := logging.NewContextWithLogger(context.Background(), zerolog.Nop())

	r, err := RegisterHandlers(ctx, router.New("testsvc"), strings.NewReader(testPolicy), svc)
	is.NoErr(err)

	return is, httptest.NewServer(r)
}

func testRequest(is *is.I, ts *httptest.Server, method, path, authHeader string) (*http.Response, string) {
	req, _ := http.NewRequest(method, ts.URL+path, nil)
	if authHeader != "" {
		req.Header.Add("Authorization", authHeader)
	}

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	defer resp.Body.Close()

	body := new(strings.Builder)
	_, err = io.Copy(body, resp.Body)
	is.NoErr(err)

	return resp, body.String()
}

func testRegions() []types.Region {
	return []types.Region{
		{
			ID: 1, RegionName: "Puget Sound", Active: true,
			ObaBaseURL:               "https://api.pugetsound.onebusaway.org/",
			SupportsObaDiscoveryAPIs: true, SupportsObaRealtimeAPIs: true,
			Bounds: []types.Bounds{
				{Lat: 47.221315, Lon: -122.4051325, LatSpan: 0.33704, LonSpan: 0.440483},
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

const testPolicy string = `package regions.authz

default allow = false

allow {
	input.method == "GET"
	input.path[0] == "api"
	input.token != ""
}
`
