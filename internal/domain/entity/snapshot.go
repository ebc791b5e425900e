package entity

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Snapshot is the latest published map state of one delivery. Every save
// replaces the previous snapshot as a whole and bumps Version.
type Snapshot struct {
	ID                 uuid.UUID    `json:"id"`
	DeliveryID         string       `json:"deliveryId"`
	Version            int64        `json:"version"`
	Locations          []Location   `json:"locations"`
	CurrentLocation    *Coordinate  `json:"currentLocation,omitempty"`
	RoutePath          []Coordinate `json:"routePath,omitempty"`
	SelectedLocationID *LocationID  `json:"selectedLocationId,omitempty"`
	CreatedAt          time.Time    `json:"createdAt"`
	UpdatedAt          time.Time    `json:"updatedAt"`
}

// Clone returns a deep enough copy that mutating the result never affects
// the receiver.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}

	out := *s
	out.Locations = make([]Location, len(s.Locations))
	for i, loc := range s.Locations {
		out.Locations[i] = loc.Clone()
	}
	if s.CurrentLocation != nil {
		current := *s.CurrentLocation
		out.CurrentLocation = &current
	}
	if s.RoutePath != nil {
		out.RoutePath = append([]Coordinate(nil), s.RoutePath...)
	}
	if s.SelectedLocationID != nil {
		selected := *s.SelectedLocationID
		out.SelectedLocationID = &selected
	}

	return &out
}

var deliveryIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// IsValidDeliveryID reports whether id is 1 to 64 letters, digits, '-' or '_'.
func IsValidDeliveryID(id string) bool {
	return deliveryIDPattern.MatchString(id)
}

// DuplicateLocationIDs returns the keys that appear more than once, in order
// of their second appearance.
func DuplicateLocationIDs(locations []Location) []string {
	seen := make(map[string]struct{}, len(locations))
	var dups []string
	for _, loc := range locations {
		key := loc.ID.Key()
		if _, ok := seen[key]; ok {
			dups = append(dups, key)

			continue
		}
		seen[key] = struct{}{}
	}

	return dups
}
