package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncLoginSuccess is a no-op.
func (n *NoopRecorder) IncLoginSuccess() {}

// IncLoginFailure is a no-op.
func (n *NoopRecorder) IncLoginFailure() {}

// IncRegistration is a no-op.
func (n *NoopRecorder) IncRegistration() {}

// IncTokenRejected is a no-op.
func (n *NoopRecorder) IncTokenRejected(reason string) {}

// IncFoodLookup is a no-op.
func (n *NoopRecorder) IncFoodLookup() {}

// ObserveFoodLookupDuration is a no-op.
func (n *NoopRecorder) ObserveFoodLookupDuration(duration time.Duration) {}
