// File: api/probe.go
// Author: momentics
//
// Capability probe contract. The probe is consulted exactly once, when a
// buffer instance is constructed; the answer is immutable for the
// lifetime of that instance.

package api

// Probe reports whether the host runtime provides the record-queue
// transport. When it does not, the buffer falls back to the per-unit
// scratch slot plus secondary delivery.
type Probe interface {
	HasRecordQueue() bool
}
