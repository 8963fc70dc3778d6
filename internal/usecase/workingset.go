package usecase

import (
	"sort"
	"strconv"
	"sync"

	"fluxo_notas/internal/domain/entities"
)

// WorkingSet is the per-session cache of notes visible to the logged-in user,
// keyed by id. It is owned by the SyncEngine: actions and polls mutate it
// only through Replace/Merge, everything else reads snapshots.
//
// The source system ran single-threaded; here the poll goroutine and request
// goroutines share the set, so access is guarded by a RWMutex.
type WorkingSet struct {
	mu    sync.RWMutex
	notas map[string]entities.Nota
}

func NewWorkingSet() *WorkingSet {
	return &WorkingSet{notas: make(map[string]entities.Nota)}
}

// Replace swaps the whole set for the given collection (full fetch).
func (w *WorkingSet) Replace(notas []entities.Nota) {
	next := make(map[string]entities.Nota, len(notas))
	for _, n := range notas {
		if n.ID == "" {
			continue
		}
		next[n.ID] = n
	}
	w.mu.Lock()
	w.notas = next
	w.mu.Unlock()
}

// Merge upserts by id (delta fetch and optimistic writes). Later payloads
// overwrite earlier ones; absent ids are left untouched, so a merge never
// deletes.
func (w *WorkingSet) Merge(notas []entities.Nota) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, n := range notas {
		if n.ID == "" {
			continue
		}
		w.notas[n.ID] = n
	}
}

// Get returns the cached note for id, if present.
func (w *WorkingSet) Get(id string) (entities.Nota, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	n, ok := w.notas[id]
	return n, ok
}

// Len returns the number of cached notes.
func (w *WorkingSet) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.notas)
}

// Snapshot returns a copy of the set ordered by numeric id (ids are assigned
// monotonically by the store), with non-numeric ids last.
func (w *WorkingSet) Snapshot() []entities.Nota {
	w.mu.RLock()
	out := make([]entities.Nota, 0, len(w.notas))
	for _, n := range w.notas {
		out = append(out, n)
	}
	w.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		a, aErr := strconv.ParseInt(out[i].ID, 10, 64)
		b, bErr := strconv.ParseInt(out[j].ID, 10, 64)
		if aErr == nil && bErr == nil {
			return a < b
		}
		if aErr == nil {
			return true
		}
		if bErr == nil {
			return false
		}
		return out[i].ID < out[j].ID
	})
	return out
}
