// File: core/slot/arena.go
// Package slot implements the scratch-slot fallback transport.
// Author: momentics
// License: Apache-2.0
//
// One fixed-capacity byte cell per execution unit, allocated once and
// reused for every reservation on that unit. There is no allocation or
// free cycle: "reserving" a slot merely returns a reference to its cell.

package slot

import "github.com/momentics/evbuf/api"

// DefaultCapacity is the per-cell size used when the configuration does
// not override it.
const DefaultCapacity = 10240

// Arena is a fixed array of per-unit scratch cells.
//
// Cells are shared by every caller that maps to the same unit index. The
// arena provides no locking: a second reservation on a unit silently
// overwrites whatever an earlier unflushed reservation wrote there.
// Callers must keep at most one reservation in flight per unit.
type Arena struct {
	capacity int
	cells    [][]byte
}

// New allocates an arena of units cells, each capacity bytes.
func New(units, capacity int) (*Arena, error) {
	if units < 1 {
		return nil, api.NewError(api.ErrCodeInvalidArgument,
			"arena needs at least one unit").WithContext("units", units)
	}
	if capacity < 1 {
		return nil, api.NewError(api.ErrCodeInvalidArgument,
			"arena cell capacity must be positive").WithContext("capacity", capacity)
	}
	cells := make([][]byte, units)
	for i := range cells {
		cells[i] = make([]byte, capacity)
	}
	return &Arena{capacity: capacity, cells: cells}, nil
}

// Cell returns the scratch cell for unit. The same backing slice is
// returned on every call; contents are whatever the previous reservation
// left behind. A unit outside the arena is a configuration error.
func (a *Arena) Cell(unit api.Unit) ([]byte, error) {
	if int(unit) < 0 || int(unit) >= len(a.cells) {
		return nil, api.ErrArenaUninitialized
	}
	return a.cells[unit], nil
}

// Capacity returns the per-cell size in bytes.
func (a *Arena) Capacity() int {
	return a.capacity
}

// Units returns the number of cells.
func (a *Arena) Units() int {
	return len(a.cells)
}
