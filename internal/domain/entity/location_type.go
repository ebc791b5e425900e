package entity

// LocationType is the role a stop plays in a delivery route.
type LocationType string

const (
	// LocationTypePickup is where goods are collected.
	LocationTypePickup LocationType = "pickup"
	// LocationTypeDropoff is where goods are delivered.
	LocationTypeDropoff LocationType = "dropoff"
)

// String returns the string representation of the LocationType.
func (t LocationType) String() string {
	return string(t)
}

// IsValid checks if the LocationType is a valid value.
func (t LocationType) IsValid() bool {
	switch t {
	case LocationTypePickup, LocationTypeDropoff:
		return true
	default:
		return false
	}
}

// LocationStatus is the progress of work at a stop.
type LocationStatus string

const (
	LocationStatusPending    LocationStatus = "pending"
	LocationStatusInProgress LocationStatus = "in-progress"
	LocationStatusCompleted  LocationStatus = "completed"
)

// String returns the string representation of the LocationStatus.
func (s LocationStatus) String() string {
	return string(s)
}

// IsValid checks if the LocationStatus is a valid value.
func (s LocationStatus) IsValid() bool {
	switch s {
	case LocationStatusPending, LocationStatusInProgress, LocationStatusCompleted:
		return true
	default:
		return false
	}
}
