package store

import (
	"context"
	"sync"
)

// Memory is an in-memory Store. It is safe for concurrent use and intended
// primarily for testing. Records go through the same msgpack codec as
// Badger, so callers never share memory with the cache.
type Memory struct {
	mu     sync.RWMutex
	data   map[string][]byte
	closed bool
}

// NewMemory creates an empty in-memory Store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, d Digest) (*Record, error) {
	m.mu.RLock()
	v, ok := m.data[string(key(d))]
	closed := m.closed
	m.mu.RUnlock()
	if closed {
		return nil, ErrClosed
	}
	if !ok {
		return nil, ErrNotFound
	}
	return decode(v)
}

func (m *Memory) Put(_ context.Context, d Digest, rec *Record) error {
	val, err := encode(rec)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.data[string(key(d))] = val
	return nil
}

func (m *Memory) Delete(_ context.Context, d Digest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	delete(m.data, string(key(d)))
	return nil
}

func (m *Memory) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	return nil
}
