//go:build linux || darwin

package randx

import "golang.org/x/sys/unix"

// systemTicks returns the monotonic clock reading in nanoseconds. Values are
// only comparable within one run on one machine, which is all seeding needs.
func systemTicks() int64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0
	}
	return ts.Nano()
}

// ticksToNanos converts a tick difference to nanoseconds. Ticks already are
// nanoseconds here.
func ticksToNanos(d int64) int64 {
	return d
}
