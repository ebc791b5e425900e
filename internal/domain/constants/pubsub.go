// Package constants holds identifiers shared across layers.
package constants

// Pub/Sub providers selectable in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Event types carried in the "event_type" message attribute.
const (
	EventTypeLocationActivated = "location.activated"
)
