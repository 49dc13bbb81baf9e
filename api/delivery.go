// File: api/delivery.go
// Author: momentics
// License: Apache-2.0
//
// Secondary delivery mechanism used by the slot-backed transport.

package api

// Delivery is the per-unit output primitive the slot transport submits
// through. Output receives the meaningful bytes of one event and returns
// a status code which is relayed to the submitter unchanged:
// non-negative means accepted, negative means rejected/dropped.
//
// Implementations must copy data before returning; the underlying slot
// region is reused by the next reservation on the same unit.
type Delivery interface {
	Output(unit Unit, data []byte) int
}
