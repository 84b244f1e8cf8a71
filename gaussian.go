package randx

import "math"

// Gaussian returns a standard normal deviate (mean 0, stddev 1).
//
// Deviates come in pairs from the Box-Muller transform: one is returned,
// the other is cached and served by the next call without touching the
// stream. A fresh pair costs exactly two unit-interval draws. The first
// draw of a pair is redrawn together with its partner while it is zero,
// since the transform takes its logarithm.
func (r *Rand) Gaussian() float64 {
	if r.hasSpare {
		r.hasSpare = false
		return r.spare
	}
	var u1, u2 float64
	for {
		u1 = r.Float64()
		u2 = r.Float64()
		if u1 > 0 {
			break
		}
	}
	radius := math.Sqrt(-2 * math.Log(u1))
	theta := 2 * math.Pi * u2
	r.spare = radius * math.Sin(theta)
	r.hasSpare = true
	return radius * math.Cos(theta)
}
