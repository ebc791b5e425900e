package service

// Activation results recorded by MapMetrics.
const (
	ActivationDispatched = "dispatched"
	ActivationMissed     = "missed"
	ActivationFailed     = "publish_failed"
)

// MapMetrics records renderer activity.
type MapMetrics interface {
	// ObserveRender records one render. source is "snapshot", "preview" or "cli";
	// skipped counts left-out points per kind.
	ObserveRender(source string, markers int, skipped map[string]int)
	// ObserveActivation records the outcome of a marker activation.
	ObserveActivation(result string)
}
