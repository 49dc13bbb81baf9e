// File: mode_queue.go
// Author: momentics
// License: Apache-2.0
//
// Queue-backed transport strategy.

package evbuf

import (
	"github.com/momentics/evbuf/api"
	"github.com/momentics/evbuf/core/ring"
)

var _ api.EventBuffer = (*queueBuffer)(nil)

type queueBuffer struct {
	queue *ring.Queue
}

// Reserve requests a record of exactly size bytes from the queue. The
// unit is not consulted: queue records are not unit-addressed, only
// ordered per producer.
func (qb *queueBuffer) Reserve(_ api.Unit, size int) (*api.Handle, error) {
	return qb.queue.Reserve(size)
}

// Submit publishes the whole reserved record. The size argument is not
// needed on this path: the data is already in queue-owned memory and the
// record length was fixed at Reserve.
func (qb *queueBuffer) Submit(_ api.Unit, h *api.Handle, _ int) error {
	qb.queue.Submit(h)
	return nil
}

func (qb *queueBuffer) Mode() api.Mode { return api.ModeQueue }
