package control_test

import (
	"testing"

	"github.com/momentics/evbuf/control"
)

func TestMetricsCounters(t *testing.T) {
	m := control.NewMetrics()
	m.CountReserve()
	m.CountReserve()
	m.CountSubmit()
	m.CountReserveFailed()
	m.CountRejected()

	snap := m.Snapshot()
	if snap["reserved"] != 2 {
		t.Errorf("reserved = %d, want 2", snap["reserved"])
	}
	if snap["submitted"] != 1 || snap["reserve_failed"] != 1 || snap["rejected"] != 1 {
		t.Errorf("unexpected snapshot: %v", snap)
	}
}

func TestConfigStoreSnapshot(t *testing.T) {
	cs := control.NewConfigStore()
	cs.Set("mode", "queue")
	snap := cs.GetSnapshot()
	if snap["mode"] != "queue" {
		t.Errorf("unexpected snapshot: %v", snap)
	}
	// Snapshot is a copy; mutating it must not leak back.
	snap["mode"] = "slot"
	if cs.GetSnapshot()["mode"] != "queue" {
		t.Error("snapshot mutation leaked into the store")
	}
}
