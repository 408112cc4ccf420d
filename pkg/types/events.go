package types

import "time"

// CatalogUpdated is published on the topic exchange whenever a refreshed
// region catalog has been committed to the local store.
type CatalogUpdated struct {
	Source      string    `json:"source"`
	RegionCount int       `json:"regionCount"`
	Timestamp   time.Time `json:"timestamp"`
}

func (c *CatalogUpdated) ContentType() string {
	return "application/json"
}
func (c *CatalogUpdated) TopicName() string {
	return "regions.catalogUpdated"
}

// ReloadRequested asks the registry to force a reload from the remote
// regions API, bypassing the local store.
type ReloadRequested struct {
	RequestedBy string    `json:"requestedBy,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

func (r *ReloadRequested) ContentType() string {
	return "application/json"
}
func (r *ReloadRequested) TopicName() string {
	return "regions.reloadRequested"
}
