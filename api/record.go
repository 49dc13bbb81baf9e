// File: api/record.go
// Author: momentics
//
// Consumer-side contracts for the record queue transport.

package api

// Record is one published event as seen by the consumer.
type Record struct {
	// Data is the record payload, exactly as reserved and written by the
	// producer. The slice is owned by the consumer after Next returns it.
	Data []byte
}

// Consumer drains published records in FIFO order per producer unit.
// Next never blocks; ok is false when no record is pending. Taking a
// record returns its byte budget to the queue.
type Consumer interface {
	Next() (rec Record, ok bool)
}
