// File: mode_slot.go
// Author: momentics
// License: Apache-2.0
//
// Slot-backed transport strategy, the fallback when the record queue is
// unavailable.

package evbuf

import (
	"github.com/momentics/evbuf/api"
	"github.com/momentics/evbuf/core/slot"
)

var _ api.EventBuffer = (*slotBuffer)(nil)

type slotBuffer struct {
	arena *slot.Arena
	out   api.Delivery
}

// Reserve returns the unit's full scratch cell regardless of size; the
// caller must write no more than size bytes. No memory is allocated: a
// repeated reservation on the same unit overwrites the previous one.
func (sb *slotBuffer) Reserve(u api.Unit, size int) (*api.Handle, error) {
	if size <= 0 {
		return nil, api.ErrInvalidArgument
	}
	if size > sb.arena.Capacity() {
		return nil, api.ErrSizeExceeded
	}
	cell, err := sb.arena.Cell(u)
	if err != nil {
		return nil, err
	}
	return api.NewHandle(api.ModeSlot, cell), nil
}

// Submit hands the first size bytes of the cell to the delivery
// mechanism for unit and relays its status: non-negative is accepted,
// negative surfaces as *api.DeliveryError.
func (sb *slotBuffer) Submit(u api.Unit, h *api.Handle, size int) error {
	if status := sb.out.Output(u, h.Bytes()[:size]); status < 0 {
		return &api.DeliveryError{Status: status}
	}
	return nil
}

func (sb *slotBuffer) Mode() api.Mode { return api.ModeSlot }
