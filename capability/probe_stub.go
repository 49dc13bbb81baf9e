//go:build !linux

// File: capability/probe_stub.go
// Author: momentics
// License: Apache-2.0
//
// Non-Linux hosts have no ring-buffer facility to probe; the buffer
// always falls back to slot mode there.

package capability

type platformProbe struct{}

func (platformProbe) HasRecordQueue() bool { return false }
