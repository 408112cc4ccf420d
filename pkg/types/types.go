package types

// Region is one transit-data service area as served by the regions REST API.
// Instances are never mutated after construction; a refresh replaces the
// whole catalog.
type Region struct {
	ID           int64    `json:"id"`
	RegionName   string   `json:"regionName"`
	Active       bool     `json:"active"`
	ObaBaseURL   string   `json:"obaBaseUrl"`
	SiriBaseURL  string   `json:"siriBaseUrl"`
	Bounds       []Bounds `json:"bounds"`
	Language     string   `json:"language"`
	ContactEmail string   `json:"contactEmail"`

	SupportsObaDiscoveryAPIs bool `json:"supportsObaDiscoveryApis"`
	SupportsObaRealtimeAPIs  bool `json:"supportsObaRealtimeApis"`
	SupportsSiriRealtimeAPIs bool `json:"supportsSiriRealtimeApis"`

	TwitterURL   string `json:"twitterUrl"`
	Experimental bool   `json:"experimental"`
}

// Bounds is one rectangular coverage patch of a region, described by its
// center point and the width of the patch in degrees on both axes. A region
// may consist of several disjoint patches.
type Bounds struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	LatSpan float64 `json:"latSpan"`
	LonSpan float64 `json:"lonSpan"`
}

// RegionSpan is the aggregate bounding box covering all of a region's bounds.
// It is derived on demand and never persisted.
type RegionSpan struct {
	LatSpan   float64 `json:"latSpan"`
	LonSpan   float64 `json:"lonSpan"`
	LatCenter float64 `json:"latCenter"`
	LonCenter float64 `json:"lonCenter"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// IsUsable checks if the region can be used by a client of this service,
// based on what the client applications support:
//   - the region must be active
//   - the region must support the OBA discovery APIs
//   - the region must support the OBA realtime APIs
//   - an experimental region requires the caller to have opted in
//
// The same predicate guards both closest-region selection and persistence,
// so a region excluded from one is never a candidate for the other.
func (r Region) IsUsable(experimentalOptIn bool) bool {
	if !r.Active {
		return false
	}
	if !r.SupportsObaDiscoveryAPIs {
		return false
	}
	if !r.SupportsObaRealtimeAPIs {
		return false
	}
	if r.Experimental && !experimentalOptIn {
		return false
	}

	return true
}

// RegionsResponse is the envelope returned by the regions REST API. The
// bundled regions file shipped with a deployment uses the same format.
type RegionsResponse struct {
	Version     int    `json:"version"`
	Code        int    `json:"code"`
	Text        string `json:"text"`
	CurrentTime int64  `json:"currentTime,omitempty"`
	Data        struct {
		List []Region `json:"list"`
	} `json:"data"`
}
