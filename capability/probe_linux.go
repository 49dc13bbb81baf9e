//go:build linux

// File: capability/probe_linux.go
// Author: momentics
// License: Apache-2.0
//
// Linux capability detection. The record-queue transport is considered
// available when the running kernel supports BPF ring-buffer maps,
// probed once through cilium/ebpf's feature checks.

package capability

import (
	"sync"

	"github.com/cilium/ebpf"
	"github.com/cilium/ebpf/features"
)

var (
	probeOnce sync.Once
	probeRes  bool
)

type platformProbe struct{}

// HasRecordQueue reports whether the kernel supports ring-buffer maps.
// The check runs once per process; later calls return the cached answer.
func (platformProbe) HasRecordQueue() bool {
	probeOnce.Do(func() {
		probeRes = features.HaveMapType(ebpf.RingBuf) == nil
	})
	return probeRes
}
