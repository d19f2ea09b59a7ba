package persistence

import (
	"context"
	"encoding/json"
	"reflect"
	"sync"

	"go.uber.org/zap"
)

// Store is the key-value persistence contract the engine depends on. Values
// are JSON documents keyed by name. Load leaves the destination untouched when
// the key is absent or the stored value is corrupt, so callers seed defaults
// before loading and never see a storage error for bad data.
type Store interface {
	Load(ctx context.Context, key string, into any) error
	Save(ctx context.Context, key string, value any) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// decodeValue unmarshals a stored document, failing soft on corruption. It
// decodes into a scratch value first; unmarshaling straight into the
// destination would leave a half-written overlay behind when a document fails
// partway through.
func decodeValue(logger *zap.Logger, key string, raw []byte, into any) error {
	if len(raw) == 0 {
		return nil
	}
	dst := reflect.ValueOf(into)
	scratch := reflect.New(dst.Type().Elem())
	if err := json.Unmarshal(raw, scratch.Interface()); err != nil {
		logger.Warn("corrupt stored value, keeping default",
			zap.String("key", key), zap.Error(err))
		return nil
	}
	dst.Elem().Set(scratch.Elem())
	return nil
}

// MemoryStore is a map-backed Store for tests and ephemeral runs.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string][]byte
	logger *zap.Logger
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte), logger: logger}
}

func (m *MemoryStore) Load(ctx context.Context, key string, into any) error {
	m.mu.Lock()
	raw := m.values[key]
	m.mu.Unlock()
	return decodeValue(m.logger, key, raw, into)
}

func (m *MemoryStore) Save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.values[key] = raw
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.values, key)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Close() error { return nil }

// Put stores a raw document, bypassing JSON marshaling. Tests use it to plant
// corrupt values.
func (m *MemoryStore) Put(key string, raw []byte) {
	m.mu.Lock()
	m.values[key] = raw
	m.mu.Unlock()
}
