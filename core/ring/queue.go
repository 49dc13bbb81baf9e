// File: core/ring/queue.go
// Author: momentics
// License: Apache-2.0
//
// Queue is the record-queue transport: an ordered, multi-producer
// channel sized in bytes. Reserve allocates a fresh record buffer of the
// exact requested size and charges the byte budget up front; Submit
// publishes the record and cannot fail; the budget is returned when the
// consumer takes the record (or on Discard).

package ring

import (
	"sync/atomic"

	"github.com/momentics/evbuf/api"
)

// Per-record accounting mirrors the usual ring-buffer layout: payload
// rounded up to 8 bytes plus an 8-byte header.
const (
	recordAlign = 8
	headerBytes = 8
	minCharge   = recordAlign + headerBytes
)

// charge returns the budget cost of a record of the given payload size.
func charge(size int) int64 {
	aligned := (size + recordAlign - 1) &^ (recordAlign - 1)
	return int64(aligned + headerBytes)
}

// Compile-time interface compliance.
var _ api.Consumer = (*Queue)(nil)

// Queue is safe for concurrent producers without caller-side locking.
// The byte budget is the only shared mutable state besides the FIFO
// cells themselves.
type Queue struct {
	capacity int64
	used     atomic.Int64
	fifo     *seqRing
}

// New creates a queue with the given total buffered capacity in bytes.
func New(capacity int) (*Queue, error) {
	if capacity < minCharge {
		return nil, api.NewError(api.ErrCodeInvalidArgument,
			"record queue capacity too small").WithContext("capacity", capacity)
	}
	return &Queue{
		capacity: int64(capacity),
		// Every record costs at least minCharge bytes of budget, so the
		// FIFO sized for capacity/minCharge records can never fill up
		// before the budget runs out. Submit relies on this.
		fifo: newSeqRing(capacity / minCharge),
	}, nil
}

// Reserve allocates a record buffer of exactly size bytes and charges
// the budget. Returns api.ErrSizeExceeded when size can never fit, and
// api.ErrNoCapacity when the budget is transiently exhausted.
// The returned region is not zero-initialized.
func (q *Queue) Reserve(size int) (*api.Handle, error) {
	if size <= 0 {
		return nil, api.ErrInvalidArgument
	}
	cost := charge(size)
	if cost > q.capacity {
		return nil, api.ErrSizeExceeded
	}
	if q.used.Add(cost) > q.capacity {
		q.used.Add(-cost)
		return nil, api.ErrNoCapacity
	}
	return api.NewHandle(api.ModeQueue, make([]byte, size)), nil
}

// Submit publishes the reserved record. The whole reserved region
// becomes visible to the consumer, in submission order relative to
// other submissions from the same producer. Loss, if any, already
// happened at Reserve; Submit reports none.
func (q *Queue) Submit(h *api.Handle) {
	data := h.Bytes()
	// Cannot be full: budget accounting caps live records below the
	// FIFO's cell count.
	q.fifo.enqueue(record{data: data, charged: charge(len(data))})
}

// Discard releases an unsubmitted reservation's budget. The handle must
// not be used afterwards.
func (q *Queue) Discard(h *api.Handle) {
	q.used.Add(-charge(len(h.Bytes())))
}

// Next takes the oldest published record, returning its budget to the
// queue. ok is false when nothing is pending. Never blocks.
func (q *Queue) Next() (api.Record, bool) {
	rec, ok := q.fifo.dequeue()
	if !ok {
		return api.Record{}, false
	}
	q.used.Add(-rec.charged)
	return api.Record{Data: rec.data}, true
}

// Capacity returns the configured byte capacity.
func (q *Queue) Capacity() int {
	return int(q.capacity)
}

// Used returns the bytes of budget currently charged (reserved or
// published, not yet consumed).
func (q *Queue) Used() int {
	return int(q.used.Load())
}

// Pending returns the number of published, unconsumed records.
func (q *Queue) Pending() int {
	return q.fifo.length()
}
