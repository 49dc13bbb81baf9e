// Package fake
// Author: momentics
//
// Fake collaborators for testing the event buffer without a live host
// environment.

package fake

import (
	"sync"

	"github.com/momentics/evbuf/api"
)

// Delivery records every Output call and answers with a programmable
// status code.
type Delivery struct {
	mu      sync.Mutex
	status  int
	outputs [][]byte
	units   []api.Unit
}

// NewDelivery creates a fake delivery answering status to every Output.
func NewDelivery(status int) *Delivery {
	return &Delivery{status: status}
}

// Output records a copy of data and returns the programmed status.
func (d *Delivery) Output(unit api.Unit, data []byte) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	buf := make([]byte, len(data))
	copy(buf, data)
	d.outputs = append(d.outputs, buf)
	d.units = append(d.units, unit)
	return d.status
}

// SetStatus changes the status returned by subsequent Output calls.
func (d *Delivery) SetStatus(status int) {
	d.mu.Lock()
	d.status = status
	d.mu.Unlock()
}

// Outputs returns copies of all delivered payloads, in call order.
func (d *Delivery) Outputs() [][]byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([][]byte, len(d.outputs))
	copy(out, d.outputs)
	return out
}

// Units returns the unit argument of each Output call, in call order.
func (d *Delivery) Units() []api.Unit {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]api.Unit, len(d.units))
	copy(out, d.units)
	return out
}
