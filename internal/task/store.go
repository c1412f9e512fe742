package task

import (
	"fmt"
	"slices"
	"sync"

	"tasklist/internal/kvstore"
)

// KVStore keeps the encoded sequence under one key of a kvstore.Store.
type KVStore struct {
	kv  kvstore.Store
	key string
}

var (
	_ Store = (*KVStore)(nil)
	_ Store = (*MemoryStore)(nil)
)

func NewKVStore(kv kvstore.Store, key string) *KVStore {
	return &KVStore{kv: kv, key: key}
}

// Key returns the storage key the sequence lives under.
func (s *KVStore) Key() string {
	return s.key
}

func (s *KVStore) Load() ([]Task, bool, error) {
	raw, ok, err := s.kv.Get(s.key)
	if err != nil {
		return nil, false, fmt.Errorf("reading %q: %w", s.key, err)
	}
	if !ok {
		return nil, false, nil
	}
	tasks, err := Decode(raw)
	if err != nil {
		return nil, false, fmt.Errorf("decoding %q: %w", s.key, err)
	}
	return tasks, true, nil
}

func (s *KVStore) Save(tasks []Task) error {
	raw, err := Encode(tasks)
	if err != nil {
		return err
	}
	if err := s.kv.Set(s.key, raw); err != nil {
		return fmt.Errorf("writing %q: %w", s.key, err)
	}
	return nil
}

func (s *KVStore) Clear() error {
	if err := s.kv.Remove(s.key); err != nil {
		return fmt.Errorf("removing %q: %w", s.key, err)
	}
	return nil
}

// MemoryStore is an in-process Store for tests. Saves and clears are counted.
type MemoryStore struct {
	mu     sync.Mutex
	tasks  []Task
	stored bool

	Saves  int
	Clears int

	// Error injection
	LoadErr error
	SaveErr error
}

func NewMemoryStore(initial ...Task) *MemoryStore {
	s := &MemoryStore{}
	if initial != nil {
		s.tasks = slices.Clone(initial)
		s.stored = true
	}
	return s
}

func (s *MemoryStore) Load() ([]Task, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, false, s.LoadErr
	}
	if !s.stored {
		return nil, false, nil
	}
	return slices.Clone(s.tasks), true, nil
}

func (s *MemoryStore) Save(tasks []Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.tasks = slices.Clone(tasks)
	if s.tasks == nil {
		s.tasks = []Task{}
	}
	s.stored = true
	s.Saves++
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = nil
	s.stored = false
	s.Clears++
	return nil
}

// Stored returns what is currently persisted and whether the entry exists.
func (s *MemoryStore) Stored() ([]Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.tasks), s.stored
}
