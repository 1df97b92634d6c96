package domain

import (
	"time"

	"github.com/google/uuid"
)

// OutcomeStatus is the terminal state of one site in a batch.
type OutcomeStatus string

const (
	OutcomeUpdated         OutcomeStatus = "updated"
	OutcomeNoToursFound    OutcomeStatus = "no_tours_found"
	OutcomeNoNearbyRegion  OutcomeStatus = "no_nearby_region"
	OutcomeSkippedNoCoords OutcomeStatus = "skipped_no_coords"
	OutcomeError           OutcomeStatus = "error"
)

// SiteSyncStatus is the tag persisted on the site row.
type SiteSyncStatus string

const (
	SiteSyncedFound SiteSyncStatus = "synced_found"
	SiteSyncedEmpty SiteSyncStatus = "synced_empty"
	SiteNoRegion    SiteSyncStatus = "no_region"
	SiteNoCoords    SiteSyncStatus = "no_coords"
	SiteSyncError   SiteSyncStatus = "error"
)

// SiteStatus maps an outcome to the tag stored on the site.
func (s OutcomeStatus) SiteStatus() SiteSyncStatus {
	switch s {
	case OutcomeUpdated:
		return SiteSyncedFound
	case OutcomeNoToursFound:
		return SiteSyncedEmpty
	case OutcomeNoNearbyRegion:
		return SiteNoRegion
	case OutcomeSkippedNoCoords:
		return SiteNoCoords
	default:
		return SiteSyncError
	}
}

// SyncOutcome is produced exactly once per processed site.
type SyncOutcome struct {
	SiteID     string        `json:"siteId"`
	SiteName   string        `json:"siteName,omitempty"`
	Status     OutcomeStatus `json:"status"`
	ToursFound int           `json:"toursFound,omitempty"`
	Error      string        `json:"error,omitempty"`
}

// BatchRequest selects sites for a run. SiteIDs wins over SearchQuery,
// which wins over the default staleness ordering.
type BatchRequest struct {
	SiteIDs     []string `json:"siteIds,omitempty"`
	SearchQuery string   `json:"searchQuery,omitempty"`
	Limit       int      `json:"limit,omitempty"`
}

// BatchReport holds the ordered outcomes of one run.
type BatchReport struct {
	RunID    uuid.UUID     `json:"runId"`
	Outcomes []SyncOutcome `json:"outcomes"`
	Duration time.Duration `json:"duration"`
}

// Counts summarises outcomes by status.
func (r *BatchReport) Counts() map[OutcomeStatus]int {
	counts := make(map[OutcomeStatus]int)
	for _, o := range r.Outcomes {
		counts[o.Status]++
	}
	return counts
}

// SiteToursEvent announces that a site's tour inventory was replaced.
type SiteToursEvent struct {
	SiteID     string
	ToursFound int
	RunID      uuid.UUID
}
