package evbuf_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/momentics/evbuf"
	"github.com/momentics/evbuf/api"
	"github.com/momentics/evbuf/fake"
)

func newSlotBuffer(t *testing.T, out api.Delivery) *evbuf.Buffer {
	t.Helper()
	b, err := evbuf.New(evbuf.Config{
		Units:    2,
		Probe:    fake.NewProbe(false),
		Delivery: out,
	})
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func newQueueBuffer(t *testing.T, capacity int) *evbuf.Buffer {
	t.Helper()
	b, err := evbuf.New(evbuf.Config{
		QueueCapacity: capacity,
		Probe:         fake.NewProbe(true),
	})
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestSlotModeDeliversExactBytes(t *testing.T) {
	out := fake.NewDelivery(0)
	b := newSlotBuffer(t, out)
	if b.Mode() != api.ModeSlot {
		t.Fatalf("expected slot mode, got %v", b.Mode())
	}

	// Capability off, capacity 10240, 64 bytes of 0xAB, delivery accepts.
	h, err := b.Reserve(0, 64)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 64; i++ {
		h.Bytes()[i] = 0xAB
	}
	if err := b.Submit(0, h, 64); err != nil {
		t.Fatalf("submit: %v", err)
	}

	outs := out.Outputs()
	if len(outs) != 1 {
		t.Fatalf("expected one delivery, got %d", len(outs))
	}
	if !bytes.Equal(outs[0], bytes.Repeat([]byte{0xAB}, 64)) {
		t.Error("delivered bytes differ from written bytes")
	}
	if units := out.Units(); units[0] != 0 {
		t.Errorf("delivered on unit %d, expected 0", units[0])
	}
}

func TestSlotModeRegionIsFixed(t *testing.T) {
	b := newSlotBuffer(t, fake.NewDelivery(0))

	h1, err := b.Reserve(0, 16)
	if err != nil {
		t.Fatal(err)
	}
	h2, err := b.Reserve(0, 4096)
	if err != nil {
		t.Fatal(err)
	}
	if &h1.Bytes()[0] != &h2.Bytes()[0] {
		t.Error("slot reservations must return the same backing region")
	}
	if len(h1.Bytes()) != 10240 {
		t.Errorf("slot region is the full cell, got %d bytes", len(h1.Bytes()))
	}

	if _, err := b.Reserve(0, 10241); !errors.Is(err, api.ErrSizeExceeded) {
		t.Fatalf("expected ErrSizeExceeded above the cell capacity, got %v", err)
	}
}

func TestSlotModeArenaMisconfigured(t *testing.T) {
	b := newSlotBuffer(t, fake.NewDelivery(0))
	if _, err := b.Reserve(7, 64); !errors.Is(err, api.ErrArenaUninitialized) {
		t.Fatalf("expected ErrArenaUninitialized, got %v", err)
	}
}

func TestSlotModeDeliveryRejection(t *testing.T) {
	out := fake.NewDelivery(-7)
	b := newSlotBuffer(t, out)

	h, err := b.Reserve(1, 8)
	if err != nil {
		t.Fatal(err)
	}
	err = b.Submit(1, h, 8)
	var de *api.DeliveryError
	if !errors.As(err, &de) {
		t.Fatalf("expected DeliveryError, got %v", err)
	}
	if de.Status != -7 {
		t.Errorf("status must be relayed verbatim, got %d", de.Status)
	}
	if got := b.Metrics().Snapshot()["rejected"]; got != 1 {
		t.Errorf("expected one counted rejection, got %d", got)
	}
}

func TestQueueModeFIFO(t *testing.T) {
	b := newQueueBuffer(t, 4096)
	if b.Mode() != api.ModeQueue {
		t.Fatalf("expected queue mode, got %v", b.Mode())
	}

	// Two sequential reservations from the same unit, submitted in order.
	h1, err := b.Reserve(0, 100)
	if err != nil {
		t.Fatal(err)
	}
	for i := range h1.Bytes() {
		h1.Bytes()[i] = 0x01
	}
	if err := b.Submit(0, h1, 100); err != nil {
		t.Fatal(err)
	}

	h2, err := b.Reserve(0, 200)
	if err != nil {
		t.Fatal(err)
	}
	for i := range h2.Bytes() {
		h2.Bytes()[i] = 0x02
	}
	if err := b.Submit(0, h2, 200); err != nil {
		t.Fatal(err)
	}

	c := b.Consumer()
	rec, ok := c.Next()
	if !ok || len(rec.Data) != 100 {
		t.Fatalf("expected the 100-byte record first (ok=%v len=%d)", ok, len(rec.Data))
	}
	if !bytes.Equal(rec.Data, bytes.Repeat([]byte{0x01}, 100)) {
		t.Error("first record corrupted")
	}
	rec, ok = c.Next()
	if !ok || len(rec.Data) != 200 {
		t.Fatalf("expected the 200-byte record second (ok=%v len=%d)", ok, len(rec.Data))
	}
	if !bytes.Equal(rec.Data, bytes.Repeat([]byte{0x02}, 200)) {
		t.Error("second record corrupted")
	}
}

func TestQueueModeExhaustion(t *testing.T) {
	b := newQueueBuffer(t, 100)

	if _, err := b.Reserve(0, 200); err == nil {
		t.Fatal("reserve above capacity must fail")
	}
	if _, ok := b.Consumer().Next(); ok {
		t.Error("no record may appear for a failed reserve")
	}
	if got := b.Metrics().Snapshot()["reserve_failed"]; got != 1 {
		t.Errorf("expected one counted failure, got %d", got)
	}
}

func TestQueueModeDiscard(t *testing.T) {
	b := newQueueBuffer(t, 64)

	h1, err := b.Reserve(0, 16)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.Reserve(0, 16); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Reserve(0, 16); !errors.Is(err, api.ErrNoCapacity) {
		t.Fatalf("expected ErrNoCapacity, got %v", err)
	}
	b.Discard(h1)
	if _, err := b.Reserve(0, 16); err != nil {
		t.Fatalf("discard must return the budget: %v", err)
	}
}

func TestProbeConsultedOnce(t *testing.T) {
	p := fake.NewProbe(true)
	b, err := evbuf.New(evbuf.Config{Probe: p})
	if err != nil {
		t.Fatal(err)
	}
	h, err := b.Reserve(0, 8)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Submit(0, h, 8); err != nil {
		t.Fatal(err)
	}
	b.Consumer().Next()
	if p.Calls() != 1 {
		t.Errorf("probe must be resolved once at construction, saw %d calls", p.Calls())
	}
}

func TestMetricsCounters(t *testing.T) {
	b := newQueueBuffer(t, 4096)
	h, err := b.Reserve(0, 32)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Submit(0, h, 32); err != nil {
		t.Fatal(err)
	}
	snap := b.Metrics().Snapshot()
	if snap["reserved"] != 1 || snap["submitted"] != 1 {
		t.Errorf("unexpected counters: %v", snap)
	}
}

func TestControlSnapshot(t *testing.T) {
	b := newSlotBuffer(t, fake.NewDelivery(0))
	snap := b.Control().GetSnapshot()
	if snap["mode"] != "slot" {
		t.Errorf("expected slot mode in settings, got %v", snap["mode"])
	}
	if snap["slot_capacity"] != 10240 {
		t.Errorf("expected default slot capacity, got %v", snap["slot_capacity"])
	}
}
