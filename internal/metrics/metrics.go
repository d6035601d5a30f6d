// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Account metrics
	IncLoginSuccess()
	IncLoginFailure()
	IncRegistration()

	// Auth gate metrics
	IncTokenRejected(reason string) // reason: "missing", "expired" or "invalid"

	// Food lookup metrics
	IncFoodLookup()
	ObserveFoodLookupDuration(duration time.Duration)
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
