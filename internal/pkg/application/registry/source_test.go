package registry

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestBundledReadsTheRegionsFile(t *testing.T) {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "regions.json")
	err := os.WriteFile(path, []byte(bundledCatalogJson), 0600)
	is.NoErr(err)

	s := NewSource(nil, path)
	regions, err := s.Bundled(context.Background())

	is.NoErr(err)
	is.Equal(len(regions), 2)
	is.Equal(regions[0].RegionName, "Puget Sound")
	is.Equal(len(regions[0].Bounds), 2)
	is.True(regions[1].Experimental)
}

func TestBundledFailsWhenTheFileIsMissing(t *testing.T) {
	is := is.New(t)

	s := NewSource(nil, filepath.Join(t.TempDir(), "does-not-exist.json"))
	_, err := s.Bundled(context.Background())

	is.True(err != nil)
}

func TestBundledFailsOnMalformedJson(t *testing.T) {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "regions.json")
	err := os.WriteFile(path, []byte("{ not json"), 0600)
	is.NoErr(err)

	s := NewSource(nil, path)
	_, err = s.Bundled(context.Background())

	is.True(err != nil)
}

const bundledCatalogJson string = `{
  "version": 2,
  "code": 200,
  "text": "OK",
  "data": {
    "list": [
      {
        "id": 1,
        "regionName": "Puget Sound",
        "active": true,
        "obaBaseUrl": "https://api.pugetsound.onebusaway.org/",
        "supportsObaDiscoveryApis": true,
        "supportsObaRealtimeApis": true,
        "language": "en_US",
        "bounds": [
          {"lat": 47.221315, "lon": -122.4051325, "latSpan": 0.33704, "lonSpan": 0.440483},
          {"lat": 47.5607395, "lon": -122.1462785, "latSpan": 0.743251, "lonSpan": 0.720901}
        ]
      },
      {
        "id": 2,
        "regionName": "Boston (beta)",
        "active": true,
        "experimental": true,
        "obaBaseUrl": "https://oba.example.org/beta/",
        "supportsObaDiscoveryApis": true,
        "supportsObaRealtimeApis": true,
        "bounds": [
          {"lat": 42.3601, "lon": -71.0589, "latSpan": 0.3, "lonSpan": 0.4}
        ]
      }
    ]
  }
}`
