package randx

import (
	"encoding/binary"
	"errors"
	"math"
)

var (
	// ErrInvalidRange reports an empty or inverted sampling range.
	ErrInvalidRange = errors.New("randx: min must be less than max")
	// ErrInvalidLength reports a non-positive buffer or string length.
	ErrInvalidLength = errors.New("randx: length must be positive")
)

// Int returns a uniformly distributed int64 in [min, max). Ranges spanning
// a power of two are served by a single masked draw; every other range goes
// through modulo rejection, so no value is ever more probable than another.
// Fails with ErrInvalidRange when min >= max, without consuming a draw.
func (r *Rand) Int(min, max int64) (int64, error) {
	if min >= max {
		return 0, ErrInvalidRange
	}
	// The unsigned difference is the true span even when max-min overflows
	// int64, e.g. Int(math.MinInt64, math.MaxInt64).
	return min + int64(r.uint64n(uint64(max-min))), nil
}

// uint64n returns a uniform value in [0, n). n must be nonzero.
func (r *Rand) uint64n(n uint64) uint64 {
	if n&(n-1) == 0 {
		return r.Uint64() & (n - 1)
	}
	for {
		word := r.Uint64()
		res := word % n
		// Accept unless word sits in the truncated final copy of [0, n)
		// at the top of the 64-bit space, which would overweight low
		// residues.
		if word-res <= math.MaxUint64-(n-1) {
			return res
		}
	}
}

// Int63 returns a uniformly distributed non-negative int64, a draw over
// [0, 2^63), for callers that just want a large random integer.
func (r *Rand) Int63() int64 {
	return int64(r.Uint64() & (1<<63 - 1))
}

// Float64 returns a uniformly distributed float64 in [0, 1): the next word
// masked to its low 53 bits, the mantissa width of a double, scaled by
// 2^-53.
func (r *Rand) Float64() float64 {
	return float64(r.Uint64()&(1<<53-1)) / (1 << 53)
}

// Bool returns true or false with equal probability.
func (r *Rand) Bool() bool {
	return r.Uint64()&1 == 1
}

// Byte returns a uniformly distributed byte.
func (r *Rand) Byte() byte {
	return byte(r.Uint64())
}

// Bytes returns a buffer of n pseudorandom bytes, filled from whole 64-bit
// words in little-endian order. A trailing partial word contributes its
// low-order bytes, so the bytes produced at a given stream position do not
// depend on how the requested length aligns to word boundaries. Fails with
// ErrInvalidLength when n <= 0, without consuming a draw.
func (r *Rand) Bytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}
	buf := make([]byte, n)
	i := 0
	for ; i+8 <= n; i += 8 {
		binary.LittleEndian.PutUint64(buf[i:], r.Uint64())
	}
	if i < n {
		word := r.Uint64()
		for ; i < n; i++ {
			buf[i] = byte(word)
			word >>= 8
		}
	}
	return buf, nil
}

// Char returns a uniformly distributed rune from the inclusive range
// [lo, hi]. Fails with ErrInvalidRange when lo >= hi, without consuming a
// draw.
func (r *Rand) Char(lo, hi rune) (rune, error) {
	if lo >= hi {
		return 0, ErrInvalidRange
	}
	v, _ := r.Int(int64(lo), int64(hi)+1)
	return rune(v), nil
}
