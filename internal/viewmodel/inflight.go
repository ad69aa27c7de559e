package viewmodel

import (
	"slices"
	"sync"
)

// InFlight tracks per-row pending deletes. Rows are independent: marking or
// clearing one id never touches another.
type InFlight struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

// mark returns false if id is already in flight.
func (f *InFlight) mark(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ids == nil {
		f.ids = make(map[string]struct{})
	}
	if _, ok := f.ids[id]; ok {
		return false
	}
	f.ids[id] = struct{}{}
	return true
}

func (f *InFlight) clear(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.ids, id)
}

func (f *InFlight) Has(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.ids[id]
	return ok
}

// IDs returns the in-flight ids in sorted order.
func (f *InFlight) IDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]string, 0, len(f.ids))
	for id := range f.ids {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
