package patternService

import (
	"math"
	"time"
)

// DecayFunc maps a last-occurrence timestamp to a multiplier in [0,1]. Injected
// into the service so the curve and half-life are swappable.
type DecayFunc func(lastOccurrence time.Time) float64

// NewHalfLifeDecay returns exponential decay: the multiplier halves every
// halfLife of elapsed time. Future timestamps decay nothing.
func NewHalfLifeDecay(halfLife time.Duration, clock func() time.Time) DecayFunc {
	if clock == nil {
		clock = time.Now
	}
	return func(lastOccurrence time.Time) float64 {
		elapsed := clock().Sub(lastOccurrence)
		if elapsed <= 0 {
			return 1.0
		}
		return math.Pow(0.5, elapsed.Hours()/halfLife.Hours())
	}
}

// NoDecay keeps evidence at full weight regardless of age.
func NoDecay(time.Time) float64 {
	return 1.0
}
