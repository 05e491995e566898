// Package store holds the persistent game services: inventory, leaderboard,
// marketplace and settings. Each service reads and writes JSON documents
// through a KV so the same code runs against gdata on device and an
// in-memory map in tests.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/quasilyte/gdata"
)

var (
	ErrNotFound           = errors.New("store: not found")
	ErrInsufficientGrains = errors.New("store: insufficient grains")
	ErrInvalidAmount      = errors.New("store: amount must be positive")
	ErrTokenNotOwned      = errors.New("store: token not owned")
	ErrAlreadyListed      = errors.New("store: token already listed")
	ErrOwnListing         = errors.New("store: cannot buy own listing")
	ErrNotSeller          = errors.New("store: not the seller")
)

// KV is a flat key/value document store.
type KV interface {
	// Get returns ErrNotFound when key has never been written.
	Get(key string) ([]byte, error)
	Put(key string, data []byte) error
}

// GdataKV persists items with gdata: files on desktop, localStorage on wasm.
type GdataKV struct {
	m *gdata.Manager
}

// OpenGdata opens the gdata item store for appName.
func OpenGdata(appName string) (*GdataKV, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open gdata: %w", err)
	}
	return &GdataKV{m: m}, nil
}

func (kv *GdataKV) Get(key string) ([]byte, error) {
	data, err := kv.m.LoadItem(key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	if len(data) == 0 {
		return nil, ErrNotFound
	}
	return data, nil
}

func (kv *GdataKV) Put(key string, data []byte) error {
	if err := kv.m.SaveItem(key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// MemoryKV keeps items in memory. Used when persistence is unavailable.
type MemoryKV struct {
	mu    sync.Mutex
	items map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{items: make(map[string][]byte)}
}

func (kv *MemoryKV) Get(key string) ([]byte, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	data, ok := kv.items[key]
	if !ok || len(data) == 0 {
		return nil, ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (kv *MemoryKV) Put(key string, data []byte) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	kv.items[key] = stored
	return nil
}

// loadJSON decodes key into v. A missing key leaves v untouched and
// returns nil.
func loadJSON(kv KV, key string, v any) error {
	data, err := kv.Get(key)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func saveJSON(kv KV, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return kv.Put(key, data)
}
