// Package fake
// Author: momentics
//
// Counting capability probe for tests.

package fake

import "sync/atomic"

// Probe is a fake capability probe that counts how often it is asked.
type Probe struct {
	answer bool
	calls  atomic.Int64
}

// NewProbe creates a probe with a fixed answer.
func NewProbe(hasRecordQueue bool) *Probe {
	return &Probe{answer: hasRecordQueue}
}

// HasRecordQueue returns the programmed answer.
func (p *Probe) HasRecordQueue() bool {
	p.calls.Add(1)
	return p.answer
}

// Calls returns how many times the probe was consulted.
func (p *Probe) Calls() int {
	return int(p.calls.Load())
}
