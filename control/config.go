// control/config.go
// Author: momentics
//
// Thread-safe store of the effective buffer settings, for runtime
// inspection. The transport mode is resolved once at construction and
// never changes, so the store carries a snapshot, not live knobs.

package control

import "sync"

// ConfigStore is a key/value map with atomic snapshot semantics.
type ConfigStore struct {
	mu     sync.RWMutex
	config map[string]any
}

// NewConfigStore initializes an empty store.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{config: make(map[string]any)}
}

// Set records one setting.
func (cs *ConfigStore) Set(key string, value any) {
	cs.mu.Lock()
	cs.config[key] = value
	cs.mu.Unlock()
}

// GetSnapshot returns a copy of all recorded settings.
func (cs *ConfigStore) GetSnapshot() map[string]any {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	out := make(map[string]any, len(cs.config))
	for k, v := range cs.config {
		out[k] = v
	}
	return out
}
