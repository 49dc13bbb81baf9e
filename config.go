// File: config.go
// Author: momentics
// License: Apache-2.0

package evbuf

import (
	"go.uber.org/zap"

	"github.com/momentics/evbuf/api"
	"github.com/momentics/evbuf/capability"
	"github.com/momentics/evbuf/core/slot"
	"github.com/momentics/evbuf/delivery"
	"github.com/momentics/evbuf/internal/unit"
)

// DefaultQueueCapacity is the record queue's byte budget when the
// configuration does not override it.
const DefaultQueueCapacity = 256 * 1024

// Config holds parameters immutable per buffer instance. The transport
// mode is derived from Probe exactly once, inside New; changing the
// environment afterwards requires constructing a new buffer.
type Config struct {
	SlotCapacity   int          // per-unit scratch cell size, bytes; default 10240
	QueueCapacity  int          // record queue byte budget; default 256 KiB
	Units          int          // execution unit count; default NumCPU
	PendingPerUnit int          // slot mode: per-unit delivery bound; default 256
	Probe          api.Probe    // capability probe; default: platform probe
	Delivery       api.Delivery // slot mode output; default: delivery.PerUnit
	Logger         *zap.Logger  // default: no-op
}

// withDefaults fills unset fields.
func (c Config) withDefaults() Config {
	if c.SlotCapacity == 0 {
		c.SlotCapacity = slot.DefaultCapacity
	}
	if c.QueueCapacity == 0 {
		c.QueueCapacity = DefaultQueueCapacity
	}
	if c.Units == 0 {
		c.Units = unit.Count()
	}
	if c.PendingPerUnit == 0 {
		c.PendingPerUnit = delivery.DefaultPending
	}
	if c.Probe == nil {
		c.Probe = capability.Platform()
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}
