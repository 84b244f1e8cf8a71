// Package randx implements a seedable pseudorandom value generator based on
// the PCG-XSH-RR permutation of a 64-bit linear congruential generator, plus
// a layer of derived distributions: bounded integers, unit-interval doubles,
// standard-normal doubles, byte buffers, characters, strings, shuffles and
// random selection.
//
// Every Rand owns a private stream selected by an odd increment constant.
// This random number generator is deterministic in the sequence of numbers
// it generates: the sequence is a pure function of the state and increment
// it starts from.
// This random number generator is not cryptographically secure.
// This random number generator is not safe for concurrent use. Instances are
// small and cheap to create, so give every goroutine its own one, or let a
// Registry hand out one stream per key.
package randx

import (
	"errors"
	"math/bits"
)

// multiplier advances the 64-bit LCG underneath the output permutation. The
// constant is O'Neill's, chosen for its spectral properties.
const multiplier = 6364136223846793005

// ErrInvalidSeed is returned by SetSeed for seeds <= 0.
var ErrInvalidSeed = errors.New("randx: seed must be positive")

// Rand is a single pseudorandom stream. The zero value is not usable; create
// instances with New, NewWith or NewSeeded.
type Rand struct {
	state uint64
	inc   uint64 // always odd, selects the stream, never exposed

	// spare normal deviate left over from the last Box-Muller pair
	hasSpare bool
	spare    float64

	seeder *Seeder
}

// New returns a Rand seeded from the package's default ambient seed source.
// Instances created in the same tick still get distinct streams.
func New() *Rand {
	return NewWith(defaultSeeder)
}

// NewWith is New with an explicit seed source, so a whole group of streams
// can share one (possibly mocked) notion of time. A nil seeder selects the
// package default.
func NewWith(s *Seeder) *Rand {
	if s == nil {
		s = defaultSeeder
	}
	return &Rand{
		state:  s.Generate() * multiplier,
		inc:    s.Generate()<<1 | 1,
		seeder: s,
	}
}

// NewSeeded returns a Rand with fully caller-controlled state, for
// reproducible sequences: state is taken as-is and stream selects the
// increment 2*stream+1. Equal arguments always yield equal sequences.
func NewSeeded(state, stream uint64) *Rand {
	return &Rand{
		state:  state,
		inc:    stream<<1 | 1,
		seeder: defaultSeeder,
	}
}

// SetSeed resets the stream to a state derived from seed alone, multiplying
// it by the LCG constant so that small seeds still land on well-spread
// states. The increment is re-derived from the ambient seed source, not from
// seed: reseeding pins the starting state but not the stream constant, so
// two SetSeed calls with the same seed produce the same draws only while the
// seed source reports the same instant. Use NewSeeded when the whole
// sequence must be reproducible.
//
// A cached Gaussian spare is discarded. Seeds <= 0 fail with ErrInvalidSeed
// and leave the generator untouched.
func (r *Rand) SetSeed(seed int64) error {
	if seed <= 0 {
		return ErrInvalidSeed
	}
	if r.seeder == nil {
		r.seeder = defaultSeeder
	}
	r.state = uint64(seed) * multiplier
	r.inc = r.seeder.Generate()<<1 | 1
	r.hasSpare = false
	r.spare = 0
	return nil
}

// Uint32 returns the next 32-bit word of the stream.
//
// One call advances the LCG state exactly once. The returned word is an
// xorshift of the pre-advance state folded down to 32 bits and then rotated
// right by its top five bits (PCG-XSH-RR), so the statistically weak low
// LCG bits never reach the output directly. Both the rotation amount and the
// rotated value come from the old state, never the freshly advanced one.
func (r *Rand) Uint32() uint32 {
	old := r.state
	r.state = old*multiplier + r.inc
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := int(old >> 59)
	return bits.RotateLeft32(xorshifted, -rot)
}

// Uint64 returns the next 64-bit word of the stream, assembled from two
// consecutive 32-bit words, first word high. All derived distributions draw
// these full words.
func (r *Rand) Uint64() uint64 {
	hi := uint64(r.Uint32())
	lo := uint64(r.Uint32())
	return hi<<32 | lo
}
