//go:build !linux

// File: internal/unit/current_stub.go
// Author: momentics
// License: Apache-2.0
//
// Hosts without a cheap current-CPU query map every caller to unit 0.

package unit

import "github.com/momentics/evbuf/api"

// Current returns the execution unit of the calling goroutine.
func Current() api.Unit { return 0 }
