// Package api
// Author: momentics
//
// Core contracts for the dual-mode event buffer: a single reserve/submit
// surface over two mutually exclusive transports (record queue or per-unit
// scratch slot), selected once at construction time. Callers never branch
// on the transport kind themselves.

package api

// Unit identifies the execution unit (e.g. a CPU core's event-handling
// path) a reservation and its submission belong to. Units are dense
// indexes in [0, units).
type Unit int

// Mode tags which transport backs a buffer instance or a handle.
type Mode uint8

const (
	// ModeQueue: reservations come from the byte-budgeted record queue.
	ModeQueue Mode = iota
	// ModeSlot: reservations return the per-unit scratch slot; submission
	// goes through the secondary delivery mechanism.
	ModeSlot
)

// String returns a short human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeQueue:
		return "queue"
	case ModeSlot:
		return "slot"
	}
	return "unknown"
}

// Handle is an opaque reference to one reservation. It is exclusively
// owned by the caller between Reserve and Submit; Submit consumes it.
// A handle must not be submitted twice, and must not be used after
// submission. Neither violation is checked at runtime.
type Handle struct {
	mode Mode
	data []byte
}

// NewHandle wraps a writable region produced by a transport.
// Intended for transport implementations, not for callers.
func NewHandle(mode Mode, data []byte) *Handle {
	return &Handle{mode: mode, data: data}
}

// Bytes returns the writable region backing this reservation.
// Contents are unspecified until the caller writes them; the region is
// never zero-initialized.
func (h *Handle) Bytes() []byte {
	return h.data
}

// Mode reports which transport produced this handle.
func (h *Handle) Mode() Mode {
	return h.mode
}

// EventBuffer is the single contract both transports implement.
//
// Reserve returns a writable region of at least size bytes, or an error
// when the transport cannot satisfy the request. In slot mode the full
// slot region is returned regardless of size; the caller must write no
// more than size bytes. At most one unsubmitted reservation may exist
// per unit at a time; overlapping reservations on the same unit race
// over the same backing memory.
//
// Submit publishes the reservation. In queue mode the whole reserved
// record becomes visible to the consumer, FIFO relative to other
// submissions from the same unit, and the call cannot fail. In slot
// mode the first size bytes of the slot are handed to the delivery
// mechanism for unit, and its status is relayed: a negative status
// surfaces as *DeliveryError. The handle is consumed either way.
type EventBuffer interface {
	Reserve(unit Unit, size int) (*Handle, error)
	Submit(unit Unit, h *Handle, size int) error
	Mode() Mode
}
