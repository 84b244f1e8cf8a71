//go:build windows

package randx

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	procFreq    = modkernel32.NewProc("QueryPerformanceFrequency")
	procCounter = modkernel32.NewProc("QueryPerformanceCounter")

	qpcFrequency = queryFrequency()
)

// queryFrequency returns the performance counter frequency in ticks per
// second. It is fixed at boot.
func queryFrequency() int64 {
	var freq int64
	r1, _, err := procFreq.Call(uintptr(unsafe.Pointer(&freq)))
	if r1 == 0 {
		panic(fmt.Sprintf("QueryPerformanceFrequency failed: %v", err))
	}
	return freq
}

// systemTicks returns the current performance counter reading. Values are
// only comparable within one run on one machine, which is all seeding needs.
func systemTicks() int64 {
	var qpc int64
	procCounter.Call(uintptr(unsafe.Pointer(&qpc)))
	return qpc
}

// ticksToNanos converts a tick difference to nanoseconds. Contains an
// integer division.
func ticksToNanos(d int64) int64 {
	d *= 1_000_000_000 // ns per sec
	d /= qpcFrequency
	return d
}
