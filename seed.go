package randx

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/coder/quartz"
)

// goldenRatio64 is 2^64 divided by the golden ratio, the usual stride for
// splitmix-style sequence generation.
const goldenRatio64 = 0x9e3779b97f4a7c15

// defaultSeeder feeds New, SetSeed and NewRegistry unless the caller
// supplies a Seeder of its own.
var defaultSeeder = NewSeeder(nil)

// A Seeder derives fresh 64-bit seeds from ambient time. Each seed packs the
// wall clock into the high half and the monotonic system tick counter into
// the low half, then folds in a mixed call counter, so two calls within a
// single clock tick still produce different seeds. A Seeder may be shared by
// any number of goroutines.
type Seeder struct {
	clock   quartz.Clock
	ticks   func() int64
	counter atomic.Uint64
}

// NewSeeder returns a Seeder reading wall-clock time from clock. A nil
// clock selects the real time source; tests inject a quartz mock to make
// derived seeds deterministic.
func NewSeeder(clock quartz.Clock) *Seeder {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Seeder{clock: clock, ticks: systemTicks}
}

// Generate returns the next ambient seed.
func (s *Seeder) Generate() uint64 {
	wall := uint64(s.clock.Now().UnixNano())
	mono := uint64(s.ticks())
	n := s.counter.Add(1)
	return (wall<<32 | mono&0xFFFFFFFF) ^ mix(n*goldenRatio64)
}

// mix is the splitmix64 finalizer.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

const calibrationRounds = 100_000

var (
	granOnce  sync.Once
	granNanos int64
)

// TickGranularity reports the resolution of the monotonic tick source in
// nanoseconds, calibrated once per process by taking the smallest positive
// difference between consecutive readings. Expect 100ns on Windows and
// typically between 20ns and 100ns on Linux and macOS.
func TickGranularity() int64 {
	granOnce.Do(func() {
		granNanos = calibrateTicks()
	})
	return granNanos
}

func calibrateTicks() int64 {
	minDiff := int64(math.MaxInt64)
	for range calibrationRounds {
		t1 := systemTicks()
		t2 := systemTicks()
		if d := ticksToNanos(t2 - t1); d > 0 && d < minDiff {
			minDiff = d
		}
	}
	return minDiff
}
