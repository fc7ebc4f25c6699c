package store

import (
	"encoding/json"
	"sync"
)

// Memory is an in-process Slots implementation. It backs tests and any
// run mode that should not touch disk.
type Memory struct {
	mu    sync.RWMutex
	slots map[string]string
}

func NewMemory() *Memory {
	return &Memory{slots: make(map[string]string)}
}

func (m *Memory) Load(key string, dst any) bool {
	m.mu.RLock()
	payload, ok := m.slots[key]
	m.mu.RUnlock()
	if !ok {
		return false
	}
	return json.Unmarshal([]byte(payload), dst) == nil
}

func (m *Memory) Save(key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	m.mu.Lock()
	m.slots[key] = string(payload)
	m.mu.Unlock()
}
