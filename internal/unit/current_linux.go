//go:build linux

// File: internal/unit/current_linux.go
// Author: momentics
// License: Apache-2.0

package unit

import (
	"golang.org/x/sys/unix"

	"github.com/momentics/evbuf/api"
)

// Current returns the CPU the calling goroutine is running on.
// The answer is advisory: without thread pinning the goroutine can
// migrate right after the call. Callers that need a stable unit should
// pin their thread, or pick a unit once and pass it explicitly.
func Current() api.Unit {
	cpu, _, err := unix.Getcpu()
	if err != nil || cpu < 0 {
		return 0
	}
	return api.Unit(cpu)
}
