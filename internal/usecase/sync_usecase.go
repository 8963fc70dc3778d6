package usecase

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"fluxo_notas/internal/usecase/interfaces"
)

var ErrRecordStoreNotConfigured = errors.New("record store not configured")

// IReconciliationStrategy is the failure-recovery seam for optimistic
// writes. The default strategy is "re-fetch truth" (the engine itself); a
// stricter rollback strategy can be substituted without touching callers.
type IReconciliationStrategy interface {
	Reconcile(ctx context.Context) error
}

// SyncEngine keeps one WorkingSet eventually consistent with the record
// store.
//
// Fetch modes:
//   - full: ListAll, wholesale Replace. Used on first sync and whenever no
//     watermark exists.
//   - delta: ListChangedSince(watermark), Merge by id. Never deletes.
//
// The watermark is captured at fetch start and advanced only after a
// successful fetch; a failed attempt never skips the changes that happened
// while it was in flight.
type SyncEngine struct {
	store interfaces.INotaRecordStore
	set   *WorkingSet

	mu        sync.Mutex
	watermark time.Time

	now func() time.Time
}

var _ IReconciliationStrategy = (*SyncEngine)(nil)

func NewSyncEngine(store interfaces.INotaRecordStore) *SyncEngine {
	return &SyncEngine{
		store: store,
		set:   NewWorkingSet(),
		now:   time.Now,
	}
}

// Set returns the engine-owned working set. Callers read snapshots; only the
// engine and the action usecases mutate it.
func (e *SyncEngine) Set() *WorkingSet {
	return e.set
}

// Sync runs one poll cycle: full fetch when no watermark exists, delta fetch
// otherwise.
func (e *SyncEngine) Sync(ctx context.Context) error {
	if e.store == nil {
		return ErrRecordStoreNotConfigured
	}

	e.mu.Lock()
	since := e.watermark
	e.mu.Unlock()

	start := e.now().UTC()

	if since.IsZero() {
		notas, err := e.store.ListAll(ctx)
		if err != nil {
			log.Printf("[sync][usecase] full fetch failed err=%v", err)
			return err
		}
		e.set.Replace(notas)
		e.advance(start)
		log.Printf("[sync][usecase] full fetch ok notas=%d", len(notas))
		return nil
	}

	notas, err := e.store.ListChangedSince(ctx, since)
	if err != nil {
		log.Printf("[sync][usecase] delta fetch failed since=%s err=%v", since.Format(time.RFC3339), err)
		return err
	}
	e.set.Merge(notas)
	e.advance(start)
	if len(notas) > 0 {
		log.Printf("[sync][usecase] delta fetch ok changed=%d", len(notas))
	}
	return nil
}

// Refresh forces a full fetch regardless of the watermark.
func (e *SyncEngine) Refresh(ctx context.Context) error {
	if e.store == nil {
		return ErrRecordStoreNotConfigured
	}
	start := e.now().UTC()
	notas, err := e.store.ListAll(ctx)
	if err != nil {
		log.Printf("[sync][usecase] refresh failed err=%v", err)
		return err
	}
	e.set.Replace(notas)
	e.advance(start)
	return nil
}

// Reconcile resynchronizes after a failed optimistic write. The remote
// record did not change, so a delta fetch would never return it and the
// wrong optimistic state would survive every later poll; recovery must be
// a full fetch.
func (e *SyncEngine) Reconcile(ctx context.Context) error {
	return e.Refresh(ctx)
}

func (e *SyncEngine) advance(to time.Time) {
	e.mu.Lock()
	if to.After(e.watermark) {
		e.watermark = to
	}
	e.mu.Unlock()
}
