// File: internal/unit/unit.go
// Package unit identifies the caller's execution unit.
// Author: momentics
// License: Apache-2.0
//
// An execution unit is the context a reservation and its submission
// belong to, one per CPU core on hosts that expose it. Units index the
// scratch arena and the per-unit delivery channels.

package unit

import "runtime"

// Count returns the number of execution units on this host.
func Count() int {
	return runtime.NumCPU()
}
