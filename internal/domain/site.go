package domain

import (
	"errors"
	"math"
	"time"
)

// Coordinate is a WGS84 point.
type Coordinate struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// Valid reports whether both components are finite and within range.
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) ||
		math.IsInf(c.Latitude, 0) || math.IsInf(c.Longitude, 0) {
		return false
	}
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Site is a catalog entry owned by the content subsystem. Only the sync
// fields are written from here.
type Site struct {
	ID           string
	Name         string
	Location     *Coordinate
	LastSyncedAt *time.Time
	SyncStatus   *string
}

// HasValidLocation reports whether the site can be resolved to a region.
func (s Site) HasValidLocation() bool {
	return s.Location != nil && s.Location.Valid()
}

// Region is a node of the provider's destination taxonomy.
type Region struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Center    *Coordinate `json:"center,omitempty"`
	ParentID  *string     `json:"parentId,omitempty"`
	Type      string      `json:"type"`
	FetchedAt time.Time   `json:"fetchedAt"`
}

// ErrSiteNotFound is returned when a site id has no row.
var ErrSiteNotFound = errors.New("site not found")
