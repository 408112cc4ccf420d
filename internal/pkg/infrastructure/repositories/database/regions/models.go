package regions

import (
	"github.com/opentransit/region-mgmt/pkg/types"
)

// Region ids are assigned by the regions REST API and are stable across
// refreshes, so they double as primary keys.
type Region struct {
	RegionID     int64  `gorm:"primaryKey;autoIncrement:false;column:region_id"`
	Name         string `gorm:"column:name"`
	Active       bool
	ObaBaseURL   string `gorm:"column:oba_base_url"`
	SiriBaseURL  string `gorm:"column:siri_base_url"`
	Language     string
	ContactEmail string

	SupportsObaDiscovery bool
	SupportsObaRealtime  bool
	SupportsSiriRealtime bool

	TwitterURL   string `gorm:"column:twitter_url"`
	Experimental bool

	Bounds []RegionBounds `gorm:"foreignKey:RegionID;references:RegionID;constraint:OnDelete:CASCADE"`
}

type RegionBounds struct {
	ID       uint  `gorm:"primaryKey"`
	RegionID int64 `gorm:"index;column:region_id"`

	Latitude  float64
	Longitude float64
	LatSpan   float64
	LonSpan   float64
}

func toEntity(r types.Region) Region {
	bounds := make([]RegionBounds, 0, len(r.Bounds))
	for _, b := range r.Bounds {
		bounds = append(bounds, RegionBounds{
			RegionID:  r.ID,
			Latitude:  b.Lat,
			Longitude: b.Lon,
			LatSpan:   b.LatSpan,
			LonSpan:   b.LonSpan,
		})
	}

	return Region{
		RegionID:             r.ID,
		Name:                 r.RegionName,
		Active:               r.Active,
		ObaBaseURL:           r.ObaBaseURL,
		SiriBaseURL:          r.SiriBaseURL,
		Language:             r.Language,
		ContactEmail:         r.ContactEmail,
		SupportsObaDiscovery: r.SupportsObaDiscoveryAPIs,
		SupportsObaRealtime:  r.SupportsObaRealtimeAPIs,
		SupportsSiriRealtime: r.SupportsSiriRealtimeAPIs,
		TwitterURL:           r.TwitterURL,
		Experimental:         r.Experimental,
		Bounds:               bounds,
	}
}

func toModel(e Region) types.Region {
	bounds := make([]types.Bounds, 0, len(e.Bounds))
	for _, b := range e.Bounds {
		bounds = append(bounds, types.Bounds{
			Lat:     b.Latitude,
			Lon:     b.Longitude,
			LatSpan: b.LatSpan,
			LonSpan: b.LonSpan,
		})
	}

	return types.Region{
		ID:                       e.RegionID,
		RegionName:               e.Name,
		Active:                   e.Active,
		ObaBaseURL:               e.ObaBaseURL,
		SiriBaseURL:              e.SiriBaseURL,
		Language:                 e.Language,
		ContactEmail:             e.ContactEmail,
		SupportsObaDiscoveryAPIs: e.SupportsObaDiscovery,
		SupportsObaRealtimeAPIs:  e.SupportsObaRealtime,
		SupportsSiriRealtimeAPIs: e.SupportsSiriRealtime,
		TwitterURL:               e.TwitterURL,
		Experimental:             e.Experimental,
		Bounds:                   bounds,
	}
}
