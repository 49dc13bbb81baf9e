// File: core/ring/seqring.go
// Package ring implements the byte-budgeted record queue transport.
// Author: momentics
// License: Apache-2.0
//
// Bounded MPMC FIFO over sequence-numbered cells, with cache-line
// padding between the producer and consumer cursors. Based on the
// pattern by Dmitry Vyukov for MPMC queues.

package ring

import "sync/atomic"

const cacheLinePad = 64

type cell struct {
	sequence atomic.Uint64
	rec      record
}

// record is one published entry awaiting the consumer.
type record struct {
	data    []byte
	charged int64
}

// seqRing is a bounded multi-producer/multi-consumer FIFO.
// A single producer's successive enqueues keep their order; that is the
// only ordering the queue promises.
type seqRing struct {
	head  uint64
	_     [cacheLinePad]byte
	tail  uint64
	_     [cacheLinePad]byte
	mask  uint64
	cells []cell
}

// newSeqRing allocates a ring with capacity rounded up to a power of two.
func newSeqRing(capacity int) *seqRing {
	if capacity < 2 {
		capacity = 2
	}
	size := 1
	for size < capacity {
		size <<= 1
	}
	r := &seqRing{
		mask:  uint64(size - 1),
		cells: make([]cell, size),
	}
	for i := range r.cells {
		r.cells[i].sequence.Store(uint64(i))
	}
	return r
}

// enqueue adds rec; returns false if the ring is full.
func (r *seqRing) enqueue(rec record) bool {
	for {
		tail := atomic.LoadUint64(&r.tail)
		c := &r.cells[tail&r.mask]
		seq := c.sequence.Load()
		dif := int64(seq) - int64(tail)

		switch {
		case dif == 0:
			if atomic.CompareAndSwapUint64(&r.tail, tail, tail+1) {
				c.rec = rec
				c.sequence.Store(tail + 1)
				return true
			}
		case dif < 0:
			return false // full
		default:
			// tail moved, retry
		}
	}
}

// dequeue removes the oldest record; ok is false when empty.
func (r *seqRing) dequeue() (record, bool) {
	for {
		head := atomic.LoadUint64(&r.head)
		c := &r.cells[head&r.mask]
		seq := c.sequence.Load()
		dif := int64(seq) - int64(head+1)

		switch {
		case dif == 0:
			if atomic.CompareAndSwapUint64(&r.head, head, head+1) {
				rec := c.rec
				c.rec = record{}
				c.sequence.Store(head + r.mask + 1)
				return rec, true
			}
		case dif < 0:
			return record{}, false // empty
		default:
			// head moved, retry
		}
	}
}

// length returns the number of records currently enqueued.
func (r *seqRing) length() int {
	head := atomic.LoadUint64(&r.head)
	tail := atomic.LoadUint64(&r.tail)
	return int(tail - head)
}
