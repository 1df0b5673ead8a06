package resilience

import "time"

// Breaker defaults tuned for the provider client: a short open window so a
// recovering provider is probed quickly, and a small half-open budget so a
// still-failing one is not hammered.
const (
	defaultFailureThreshold = 5
	defaultOpenTimeout      = 15 * time.Second
	defaultHalfOpenMaxReq   = 2
)

// CircuitBreakerConfig carries the provider-client breaker knobs. The zero
// value of each knob means "use the default", so an empty struct is a
// working configuration with the breaker switched off.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

// Sanitized returns a copy with every out-of-range knob replaced by its
// default. Enabled passes through untouched.
func (c CircuitBreakerConfig) Sanitized() CircuitBreakerConfig {
	out := c
	if out.FailureThreshold < 1 {
		out.FailureThreshold = defaultFailureThreshold
	}
	if out.OpenTimeout <= 0 {
		out.OpenTimeout = defaultOpenTimeout
	}
	if out.HalfOpenMaxReq < 1 {
		out.HalfOpenMaxReq = defaultHalfOpenMaxReq
	}
	return out
}
