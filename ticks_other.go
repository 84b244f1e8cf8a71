//go:build !windows && !linux && !darwin

package randx

import "time"

// systemTicks falls back to the runtime clock on platforms without a
// dedicated monotonic source binding.
func systemTicks() int64 {
	return time.Now().UnixNano()
}

func ticksToNanos(d int64) int64 {
	return d
}
