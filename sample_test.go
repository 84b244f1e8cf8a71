package randx

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

// chiSquare computes the Pearson chi-square statistic for a slice of observed counts.
// expected is the expected count per bin and must be > 0.
// It returns the statistic Σ (observed_i - expected)^2 / expected as a float64.
func chiSquare(counts []int, expected float64) float64 {
	var x2 float64
	for _, o := range counts {
		diff := float64(o) - expected
		x2 += (diff * diff) / expected
	}
	return x2
}

// TestMixedDraws_Million interleaves every distribution a million times to
// ensure there are no panics or range violations.
func TestMixedDraws_Million(t *testing.T) {
	const calls = 1_000_000
	rng := New()
	items := []int{1, 2, 3, 4, 5}
	now := time.Now()
	for range calls {
		switch rng.Uint32() % 10 {
		case 0:
			_ = rng.Uint64()
		case 1:
			_, _ = rng.Int(-50, 50)
		case 2:
			_ = rng.Float64()
		case 3:
			_ = rng.Gaussian()
		case 4:
			_ = rng.Bool()
		case 5:
			_ = rng.Byte()
		case 6:
			_, _ = rng.Bytes(17)
		case 7:
			_, _ = rng.Char(' ', '~')
		case 8:
			Shuffle(rng, items)
		case 9:
			_, _ = rng.Time(now, now.Add(time.Hour))
		}
	}
}

func TestIntPinned(t *testing.T) {
	cases := []struct {
		min, max int64
		want     int64
	}{
		{0, 256, 132},
		{10, 18, 14},
		{0, 100, 64},
		{-128, 128, 4},
		{5, 6, 5},
		{math.MinInt64, math.MaxInt64, -9223372036644709244},
		{0, 3, 0},
		{1, 1000000007, 210066565},
		{-1000, 1000, -436},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("min=%d,max=%d", c.min, c.max), func(t *testing.T) {
			rng := NewSeeded(42, 54)
			got, err := rng.Int(c.min, c.max)
			require.NoError(t, err)
			if got != c.want {
				t.Errorf("got %d, want %d", got, c.want)
			}
		})
	}
}

func TestIntContainment(t *testing.T) {
	cases := []struct{ min, max int64 }{
		{0, 1}, {0, 2}, {-1, 1}, {0, 7}, {5, 6}, {-3, 11},
		{1 << 20, 1<<20 + 3}, {math.MinInt64, 0}, {-5, math.MaxInt64},
	}
	rng := NewSeeded(0x1234567890ABCDEF, 0xBEEF)
	for _, c := range cases {
		for range 10_000 {
			v, err := rng.Int(c.min, c.max)
			require.NoError(t, err)
			if v < c.min || v >= c.max {
				t.Fatalf("Int(%d, %d) = %d; out of range", c.min, c.max, v)
			}
		}
	}
}

func TestIntRejectsBadRanges(t *testing.T) {
	cases := []struct{ min, max int64 }{
		{5, 5}, {10, 3}, {0, 0}, {math.MaxInt64, math.MinInt64},
	}
	for _, c := range cases {
		rng := NewSeeded(7, 7)
		twin := NewSeeded(7, 7)
		_, err := rng.Int(c.min, c.max)
		assert.ErrorIs(t, err, ErrInvalidRange, "Int(%d, %d)", c.min, c.max)
		assert.Equal(t, twin.state, rng.state, "Int(%d, %d) consumed a draw on failure", c.min, c.max)
	}
}

func TestIntUniformity(t *testing.T) {
	const (
		samples = 10_000
		bins    = 256
		alpha   = 0.05
	)
	rng := NewSeeded(0x1234567890ABCDEF, 0xCAFEF00D)
	counts := make([]int, bins)
	for range samples {
		v, err := rng.Int(0, bins)
		require.NoError(t, err)
		counts[v]++
	}
	x2 := chiSquare(counts, float64(samples)/float64(bins))
	p := distuv.ChiSquared{K: bins - 1}.Survival(x2)
	if p < alpha {
		t.Fatalf("χ² test result → H0 rejected (not uniform at significance level α=%.2f): χ²=%.3f p=%.3f", alpha, x2, p)
	}
	t.Logf("χ² test result → H0 NOT rejected (no evidence against uniformity at α=%.2f): χ²=%.3f p=%.3f", alpha, x2, p)
}

// The modulo-rejection path gets its own gate over a span that is not a
// power of two.
func TestIntRejectionUniformity(t *testing.T) {
	const (
		samples = 10_000
		bins    = 100
		alpha   = 0.05
	)
	rng := NewSeeded(0x1234567890ABCDEF, 0xCAFE)
	counts := make([]int, bins)
	for range samples {
		v, err := rng.Int(0, bins)
		require.NoError(t, err)
		counts[v]++
	}
	x2 := chiSquare(counts, float64(samples)/float64(bins))
	p := distuv.ChiSquared{K: bins - 1}.Survival(x2)
	if p < alpha {
		t.Fatalf("χ² test result → H0 rejected (not uniform at significance level α=%.2f): χ²=%.3f p=%.3f", alpha, x2, p)
	}
	t.Logf("χ² test result → H0 NOT rejected (no evidence against uniformity at α=%.2f): χ²=%.3f p=%.3f", alpha, x2, p)
}

// For a power-of-two span the rejection test never fires, so on twin streams
// the masked fast path and the generic rejection sampler must agree value
// for value, which makes their distributions identical rather than merely
// close.
func TestMaskedPathMatchesRejectionPath(t *testing.T) {
	const n = 256
	rng := NewSeeded(7, 3)
	twin := NewSeeded(7, 3)
	for i := range 1000 {
		v, err := rng.Int(0, n)
		require.NoError(t, err)
		word := twin.Uint64()
		res := word % n
		require.True(t, word-res <= math.MaxUint64-(n-1), "rejection fired on a power-of-two span")
		if v != int64(res) {
			t.Fatalf("round %d: mask path %d, rejection path %d", i, v, res)
		}
	}
}

func TestInt63(t *testing.T) {
	rng := NewSeeded(42, 54)
	assert.Equal(t, int64(210066564), rng.Int63())
	assert.Equal(t, int64(855181062783716777), rng.Int63())
	for range 10_000 {
		if v := rng.Int63(); v < 0 {
			t.Fatalf("Int63 returned negative value %d", v)
		}
	}
}

func TestFloat64Pinned(t *testing.T) {
	rng := NewSeeded(42, 54)
	want := []float64{2.3322073605669402e-08, 0.9441706125893933, 0.8900160869592103}
	for i, w := range want {
		got := rng.Float64()
		if got != w {
			t.Errorf("draw %d: got %v, want %v", i, got, w)
		}
	}
}

func TestFloat64Range(t *testing.T) {
	rng := NewSeeded(0x1234567890ABCDEF, 0xF00D)
	for range 100_000 {
		x := rng.Float64()
		if x < 0.0 || x >= 1.0 || math.IsNaN(x) || math.IsInf(x, 0) {
			t.Errorf("Float64 out of range: %f", x)
		}
	}
}

// With 53 mantissa bits in play, a duplicate within 100k draws would point
// at a truncated output path.
func TestFloat64Precision(t *testing.T) {
	rng := NewSeeded(0x1234567890ABCDEF, 0xF00D)
	seen := make(map[float64]bool)
	for range 100_000 {
		x := rng.Float64()
		if seen[x] {
			t.Errorf("Duplicate value detected: %f", x)
			break
		}
		seen[x] = true
	}
}

func TestFloat64Mean(t *testing.T) {
	rng := NewSeeded(0x1234567890ABCDEF, 0xF00D)
	n := 1_000_000
	var sum float64
	for range n {
		sum += rng.Float64()
	}
	mean := sum / float64(n)
	assert.InDelta(t, 0.5, mean, 0.001, "Float64 mean drifted")
}

func TestBoolPinned(t *testing.T) {
	rng := NewSeeded(42, 54)
	want := []bool{false, true, true, true, true, true, false, false}
	for i, w := range want {
		if got := rng.Bool(); got != w {
			t.Errorf("draw %d: got %v, want %v", i, got, w)
		}
	}
}

// Chi-square with one degree of freedom against the classic critical value
// at α=0.05.
func TestBoolBalance(t *testing.T) {
	const samples = 10_000
	rng := NewSeeded(0x1234567890ABCDEF, 0xFF)
	trues := 0
	for range samples {
		if rng.Bool() {
			trues++
		}
	}
	x2 := chiSquare([]int{samples - trues, trues}, float64(samples)/2)
	assert.Less(t, x2, 3.841, "Bool is biased: χ²(1)=%.4f (true=%d, false=%d)", x2, trues, samples-trues)
}

func TestBytePinned(t *testing.T) {
	rng := NewSeeded(42, 54)
	want := []byte{132, 169, 29, 239, 177, 79, 26, 182}
	for i, w := range want {
		if got := rng.Byte(); got != w {
			t.Errorf("draw %d: got %d, want %d", i, got, w)
		}
	}
}

func TestByteUniformity(t *testing.T) {
	const (
		samples = 10_000
		bins    = 256
		alpha   = 0.05
	)
	rng := NewSeeded(0xDEADBEEFCAFEBABE, 770)
	counts := make([]int, bins)
	for range samples {
		counts[rng.Byte()]++
	}
	x2 := chiSquare(counts, float64(samples)/float64(bins))
	p := distuv.ChiSquared{K: bins - 1}.Survival(x2)
	if p < alpha {
		t.Fatalf("χ² test result → H0 rejected (not uniform at significance level α=%.2f): χ²=%.3f p=%.3f", alpha, x2, p)
	}
	t.Logf("χ² test result → H0 NOT rejected (no evidence against uniformity at α=%.2f): χ²=%.3f p=%.3f", alpha, x2, p)
}

func TestBytesPinned(t *testing.T) {
	rng := NewSeeded(42, 54)
	got, err := rng.Bytes(20)
	require.NoError(t, err)
	require.Len(t, got, 20)
	assert.Equal(t, "845c850c00000000a94ddd49a536de0b1deb4c04", hex.EncodeToString(got))

	// two whole words little-endian, then the low four bytes of a third
	twin := NewSeeded(42, 54)
	want := make([]byte, 24)
	binary.LittleEndian.PutUint64(want[0:], twin.Uint64())
	binary.LittleEndian.PutUint64(want[8:], twin.Uint64())
	binary.LittleEndian.PutUint64(want[16:], twin.Uint64())
	assert.Equal(t, want[:20], got)
}

// The bytes produced at a stream position do not depend on the requested
// length: a short buffer is a prefix of a longer one drawn from the same
// start.
func TestBytesAlignmentIndependence(t *testing.T) {
	short, err := NewSeeded(42, 54).Bytes(3)
	require.NoError(t, err)
	long, err := NewSeeded(42, 54).Bytes(8)
	require.NoError(t, err)
	assert.Equal(t, "845c85", hex.EncodeToString(short))
	assert.Equal(t, "845c850c00000000", hex.EncodeToString(long))
	assert.Equal(t, long[:3], short)
}

func TestBytesRejectsBadLengths(t *testing.T) {
	for _, n := range []int{0, -1, -8} {
		rng := NewSeeded(7, 7)
		twin := NewSeeded(7, 7)
		buf, err := rng.Bytes(n)
		assert.ErrorIs(t, err, ErrInvalidLength, "Bytes(%d)", n)
		assert.Nil(t, buf)
		assert.Equal(t, twin.state, rng.state, "Bytes(%d) consumed a draw on failure", n)
	}
}

func TestCharPinned(t *testing.T) {
	cases := []struct {
		lo, hi rune
		want   []rune
	}{
		{'a', 'z', []rune{'g', 'r', 'd'}},
		{' ', '~', []rune{'~', '|', 'X'}},
		{'α', 'ω', []rune{'ο', 'γ', 'β'}},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("lo=%q,hi=%q", c.lo, c.hi), func(t *testing.T) {
			rng := NewSeeded(42, 54)
			for i, w := range c.want {
				got, err := rng.Char(c.lo, c.hi)
				require.NoError(t, err)
				if got != w {
					t.Errorf("draw %d: got %q, want %q", i, got, w)
				}
			}
		})
	}
}

func TestCharContainmentInclusive(t *testing.T) {
	rng := NewSeeded(0x1234567890ABCDEF, 0x61)
	seenLo, seenHi := false, false
	for range 10_000 {
		c, err := rng.Char('a', 'f')
		require.NoError(t, err)
		if c < 'a' || c > 'f' {
			t.Fatalf("Char('a', 'f') = %q; out of range", c)
		}
		seenLo = seenLo || c == 'a'
		seenHi = seenHi || c == 'f'
	}
	// both endpoints of the inclusive range must be reachable
	assert.True(t, seenLo, "lower bound never drawn")
	assert.True(t, seenHi, "upper bound never drawn")
}

func TestCharRejectsBadRanges(t *testing.T) {
	cases := []struct{ lo, hi rune }{{'a', 'a'}, {'z', 'a'}, {'~', ' '}}
	for _, c := range cases {
		rng := NewSeeded(7, 7)
		twin := NewSeeded(7, 7)
		_, err := rng.Char(c.lo, c.hi)
		assert.ErrorIs(t, err, ErrInvalidRange, "Char(%q, %q)", c.lo, c.hi)
		assert.Equal(t, twin.state, rng.state, "Char(%q, %q) consumed a draw on failure", c.lo, c.hi)
	}
}

func TestCharUniformity(t *testing.T) {
	const (
		samples = 10_000
		alpha   = 0.05
	)
	rng := NewSeeded(0x1234567890ABCDEF, 0x61)
	counts := make([]int, 26)
	for range samples {
		c, err := rng.Char('a', 'z')
		require.NoError(t, err)
		counts[c-'a']++
	}
	x2 := chiSquare(counts, float64(samples)/26)
	p := distuv.ChiSquared{K: 25}.Survival(x2)
	if p < alpha {
		t.Fatalf("χ² test result → H0 rejected (not uniform at significance level α=%.2f): χ²=%.3f p=%.3f", alpha, x2, p)
	}
	t.Logf("χ² test result → H0 NOT rejected (no evidence against uniformity at α=%.2f): χ²=%.3f p=%.3f", alpha, x2, p)
}
