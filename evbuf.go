// File: evbuf.go
// Package evbuf presents a single reserve/submit contract over two
// mutually exclusive event transports.
// Author: momentics
// License: Apache-2.0
//
// New probes the host once and wires either the record-queue transport
// or the scratch-slot transport behind the api.EventBuffer contract.
// Calling code never branches on the environment itself. Neither
// operation blocks; both complete in bounded time.

package evbuf

import (
	"go.uber.org/zap"

	"github.com/momentics/evbuf/api"
	"github.com/momentics/evbuf/capability"
	"github.com/momentics/evbuf/control"
	"github.com/momentics/evbuf/core/ring"
	"github.com/momentics/evbuf/core/slot"
	"github.com/momentics/evbuf/delivery"
)

// Compile-time interface compliance.
var _ api.EventBuffer = (*Buffer)(nil)

// Buffer is the dual-mode event buffer. It delegates to the transport
// selected at construction and keeps the drop/submit counters the
// transports themselves stay silent about.
type Buffer struct {
	impl    api.EventBuffer
	mode    api.Mode
	queue   *ring.Queue
	metrics *control.Metrics
	store   *control.ConfigStore
	log     *zap.Logger
}

// New resolves the capability probe and constructs the matching
// transport. The probe is consulted exactly once here.
func New(cfg Config) (*Buffer, error) {
	cfg = cfg.withDefaults()

	b := &Buffer{
		mode:    capability.Resolve(cfg.Probe),
		metrics: control.NewMetrics(),
		store:   control.NewConfigStore(),
		log:     cfg.Logger,
	}

	switch b.mode {
	case api.ModeQueue:
		q, err := ring.New(cfg.QueueCapacity)
		if err != nil {
			return nil, err
		}
		b.queue = q
		b.impl = &queueBuffer{queue: q}
	case api.ModeSlot:
		arena, err := slot.New(cfg.Units, cfg.SlotCapacity)
		if err != nil {
			return nil, err
		}
		out := cfg.Delivery
		if out == nil {
			out, err = delivery.NewPerUnit(cfg.Units, cfg.PendingPerUnit)
			if err != nil {
				return nil, err
			}
		}
		b.impl = &slotBuffer{arena: arena, out: out}
	}

	b.store.Set("mode", b.mode.String())
	b.store.Set("units", cfg.Units)
	b.store.Set("slot_capacity", cfg.SlotCapacity)
	b.store.Set("queue_capacity", cfg.QueueCapacity)

	b.log.Info("event buffer initialized",
		zap.String("mode", b.mode.String()),
		zap.Int("units", cfg.Units),
		zap.Int("slot_capacity", cfg.SlotCapacity),
		zap.Int("queue_capacity", cfg.QueueCapacity),
	)
	return b, nil
}

// Reserve returns a writable region of at least size bytes for unit.
// See api.EventBuffer for the full contract.
func (b *Buffer) Reserve(u api.Unit, size int) (*api.Handle, error) {
	h, err := b.impl.Reserve(u, size)
	if err != nil {
		b.metrics.CountReserveFailed()
		return nil, err
	}
	b.metrics.CountReserve()
	return h, nil
}

// Submit publishes a reservation and consumes the handle.
func (b *Buffer) Submit(u api.Unit, h *api.Handle, size int) error {
	if h == nil || size < 0 {
		return api.ErrInvalidArgument
	}
	if err := b.impl.Submit(u, h, size); err != nil {
		b.metrics.CountRejected()
		return err
	}
	b.metrics.CountSubmit()
	return nil
}

// Discard releases an unsubmitted reservation. Queue mode returns the
// record's byte budget; slot mode is a no-op, the cell is simply reused.
// The handle must not be used afterwards.
func (b *Buffer) Discard(h *api.Handle) {
	if h != nil && h.Mode() == api.ModeQueue && b.queue != nil {
		b.queue.Discard(h)
	}
}

// Mode reports the transport selected at construction.
func (b *Buffer) Mode() api.Mode {
	return b.mode
}

// Consumer returns the record queue's consuming end, or nil in slot
// mode (slot-mode events arrive through the Delivery mechanism instead).
func (b *Buffer) Consumer() api.Consumer {
	if b.mode != api.ModeQueue {
		return nil
	}
	return b.queue
}

// Metrics exposes the reservation/submission counters.
func (b *Buffer) Metrics() *control.Metrics {
	return b.metrics
}

// Control exposes the effective settings snapshot.
func (b *Buffer) Control() *control.ConfigStore {
	return b.store
}
