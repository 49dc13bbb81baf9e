// File: delivery/perunit.go
// Package delivery provides the default secondary delivery mechanism for
// the slot-backed transport.
// Author: momentics
// License: Apache-2.0
//
// PerUnit keeps one bounded FIFO of pending events per execution unit,
// mirroring the per-CPU output channels the slot transport is a stand-in
// for. Output copies the event out of the caller's scratch slot; the
// slot is free for reuse as soon as Output returns.

package delivery

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/evbuf/api"
)

// Status codes reported by Output and relayed verbatim by the slot
// transport. Non-negative means accepted.
const (
	StatusOK      = 0
	StatusNoSpace = -1 // the unit's channel is full; event dropped
	StatusBadUnit = -2 // unit outside the configured range
)

// DefaultPending is the per-unit pending-event bound used when the
// configuration does not override it.
const DefaultPending = 256

type unitChannel struct {
	mu sync.Mutex
	q  *queue.Queue
}

// Compile-time interface compliance.
var _ api.Delivery = (*PerUnit)(nil)

// PerUnit is a bounded per-unit FIFO delivery channel.
type PerUnit struct {
	pending int
	units   []unitChannel
}

// NewPerUnit creates channels for units execution units, each holding at
// most pending undrained events.
func NewPerUnit(units, pending int) (*PerUnit, error) {
	if units < 1 || pending < 1 {
		return nil, api.NewError(api.ErrCodeInvalidArgument,
			"delivery needs positive unit count and pending bound").
			WithContext("units", units).WithContext("pending", pending)
	}
	d := &PerUnit{pending: pending, units: make([]unitChannel, units)}
	for i := range d.units {
		d.units[i].q = queue.New()
	}
	return d, nil
}

// Output copies data into the unit's channel. Returns StatusOK on
// accept, StatusNoSpace when the channel is full (the event is dropped),
// StatusBadUnit for an out-of-range unit.
func (d *PerUnit) Output(unit api.Unit, data []byte) int {
	if int(unit) < 0 || int(unit) >= len(d.units) {
		return StatusBadUnit
	}
	c := &d.units[unit]
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.q.Length() >= d.pending {
		return StatusNoSpace
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	c.q.Add(buf)
	return StatusOK
}

// Next drains the oldest pending event for unit. ok is false when the
// channel is empty or the unit is out of range.
func (d *PerUnit) Next(unit api.Unit) (data []byte, ok bool) {
	if int(unit) < 0 || int(unit) >= len(d.units) {
		return nil, false
	}
	c := &d.units[unit]
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.q.Length() == 0 {
		return nil, false
	}
	return c.q.Remove().([]byte), true
}

// Pending returns the number of undrained events for unit.
func (d *PerUnit) Pending(unit api.Unit) int {
	if int(unit) < 0 || int(unit) >= len(d.units) {
		return 0
	}
	c := &d.units[unit]
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.q.Length()
}

// Units returns the configured unit count.
func (d *PerUnit) Units() int {
	return len(d.units)
}
