// File: capability/probe.go
// Package capability resolves which transport the host runtime supports.
// Author: momentics
// License: Apache-2.0
//
// The probe answers one boolean question: is the record-queue transport
// available? It is consulted exactly once per buffer instance; the
// resulting mode is immutable until a new instance is constructed.

package capability

import "github.com/momentics/evbuf/api"

// staticProbe always answers the same thing. Used for tests and for
// deployments that pin the transport by configuration.
type staticProbe bool

func (p staticProbe) HasRecordQueue() bool { return bool(p) }

// Static returns a probe with a fixed answer.
func Static(hasRecordQueue bool) api.Probe {
	return staticProbe(hasRecordQueue)
}

// Platform returns the host-specific probe: a kernel feature check on
// Linux, always-false elsewhere.
func Platform() api.Probe {
	return platformProbe{}
}

// Resolve maps the probe's answer to a transport mode.
func Resolve(p api.Probe) api.Mode {
	if p.HasRecordQueue() {
		return api.ModeQueue
	}
	return api.ModeSlot
}
