package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	LoginSuccesses            uint64
	LoginFailures             uint64
	Registrations             uint64
	TokensRejectedMissing     uint64
	TokensRejectedExpired     uint64
	TokensRejectedInvalid     uint64
	FoodLookups               uint64
	FoodLookupDurationCount   uint64
	FoodLookupDurationTotalNs int64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	loginSuccesses            uint64
	loginFailures             uint64
	registrations             uint64
	tokensRejectedMissing     uint64
	tokensRejectedExpired     uint64
	tokensRejectedInvalid     uint64
	foodLookups               uint64
	foodLookupDurationCount   uint64
	foodLookupDurationTotalNs int64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		LoginSuccesses:            atomic.LoadUint64(&m.loginSuccesses),
		LoginFailures:             atomic.LoadUint64(&m.loginFailures),
		Registrations:             atomic.LoadUint64(&m.registrations),
		TokensRejectedMissing:     atomic.LoadUint64(&m.tokensRejectedMissing),
		TokensRejectedExpired:     atomic.LoadUint64(&m.tokensRejectedExpired),
		TokensRejectedInvalid:     atomic.LoadUint64(&m.tokensRejectedInvalid),
		FoodLookups:               atomic.LoadUint64(&m.foodLookups),
		FoodLookupDurationCount:   atomic.LoadUint64(&m.foodLookupDurationCount),
		FoodLookupDurationTotalNs: atomic.LoadInt64(&m.foodLookupDurationTotalNs),
	}
}

// IncLoginSuccess increments the successful login counter.
func (m *InMemoryRecorder) IncLoginSuccess() {
	atomic.AddUint64(&m.loginSuccesses, 1)
}

// IncLoginFailure increments the failed login counter.
func (m *InMemoryRecorder) IncLoginFailure() {
	atomic.AddUint64(&m.loginFailures, 1)
}

// IncRegistration increments the registration counter.
func (m *InMemoryRecorder) IncRegistration() {
	atomic.AddUint64(&m.registrations, 1)
}

// IncTokenRejected increments the rejection counter for the reason.
// Unknown reasons count as "invalid".
func (m *InMemoryRecorder) IncTokenRejected(reason string) {
	switch reason {
	case "missing":
		atomic.AddUint64(&m.tokensRejectedMissing, 1)
	case "expired":
		atomic.AddUint64(&m.tokensRejectedExpired, 1)
	default:
		atomic.AddUint64(&m.tokensRejectedInvalid, 1)
	}
}

// IncFoodLookup increments the food lookup counter.
func (m *InMemoryRecorder) IncFoodLookup() {
	atomic.AddUint64(&m.foodLookups, 1)
}

// ObserveFoodLookupDuration records a food lookup duration.
func (m *InMemoryRecorder) ObserveFoodLookupDuration(duration time.Duration) {
	atomic.AddUint64(&m.foodLookupDurationCount, 1)
	atomic.AddInt64(&m.foodLookupDurationTotalNs, duration.Nanoseconds())
}
