package config

import "sync"

type MemoryBackend struct {
	mu   sync.Mutex
	data map[string]string
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string]string)}
}

func (m *MemoryBackend) Get(filename string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[filename], nil
}

func (m *MemoryBackend) Set(filename, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[filename] = value
	return nil
}
