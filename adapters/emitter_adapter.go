// File: adapters/emitter_adapter.go
// Package adapters bridges the reserve/submit contract to simpler call
// shapes.
// Author: momentics
// License: Apache-2.0

package adapters

import (
	"github.com/momentics/evbuf/api"
	"github.com/momentics/evbuf/internal/unit"
)

// Emitter wraps an api.EventBuffer into a one-call emit path for
// callers that have their payload assembled up front and do not need to
// build it in place inside the reservation.
type Emitter struct {
	buf api.EventBuffer
}

// NewEmitter creates an emitter over buf.
func NewEmitter(buf api.EventBuffer) *Emitter {
	return &Emitter{buf: buf}
}

// Emit reserves, copies payload in, and submits, all against the
// calling goroutine's current execution unit.
func (e *Emitter) Emit(payload []byte) error {
	return e.EmitOn(unit.Current(), payload)
}

// EmitOn is Emit with an explicit unit, for callers that manage their
// own unit assignment.
func (e *Emitter) EmitOn(u api.Unit, payload []byte) error {
	h, err := e.buf.Reserve(u, len(payload))
	if err != nil {
		return err
	}
	copy(h.Bytes(), payload)
	return e.buf.Submit(u, h, len(payload))
}
