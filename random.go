package tandem

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// RandomInt returns a uniform integer in [lo, hi]. The bounds may be given
// in either order.
func RandomInt(lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo + rand.IntN(hi-lo+1)
}

// RandomFloat returns a uniform float in [lo, hi). The bounds may be given
// in either order.
func RandomFloat(lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo + rand.Float64()*(hi-lo)
}

// NewUUID returns a random version 4 UUID in canonical 8-4-4-4-12 form.
func NewUUID() string {
	return uuid.NewString()
}
