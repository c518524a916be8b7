package memory

import (
	"sync"
)

// table is a map of records guarded by a RWMutex. Values are cloned on the way in
// and on the way out so callers never share pointers with the store.
type table[T any] struct {
	mu      sync.RWMutex
	records map[string]*T
	clone   func(*T) *T
}

func newTable[T any](clone func(*T) *T) *table[T] {
	return &table[T]{
		records: make(map[string]*T),
		clone:   clone,
	}
}

func (t *table[T]) list() []*T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]*T, 0, len(t.records))
	for _, v := range t.records {
		out = append(out, t.clone(v))
	}
	return out
}

func (t *table[T]) put(id string, v *T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.records[id] = t.clone(v)
}

func (t *table[T]) putMany(items map[string]*T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for id, v := range items {
		t.records[id] = t.clone(v)
	}
}

func (t *table[T]) delete(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.records, id)
}
