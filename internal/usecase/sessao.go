package usecase

import (
	"context"
	"log"
	"sync"

	"fluxo_notas/internal/domain/entities"
	"fluxo_notas/internal/usecase/interfaces"
)

// Sessao binds a logged-in user to their working set, sync engine and
// poller. It is acquired on the user's first request and invalidated on
// logout; the User value is immutable for the session's lifetime.
type Sessao struct {
	User   entities.User
	Engine *SyncEngine
	poller *Poller
}

// Encerrar stops the session's poller. In-flight fetches complete and are
// discarded with the set.
func (s *Sessao) Encerrar() {
	if s.poller != nil {
		s.poller.Stop()
	}
}

// SessaoManager hands out one Sessao per user id, creating the engine and
// starting the role-cadenced poller on first use.
type SessaoManager struct {
	store interfaces.INotaRecordStore

	mu      sync.Mutex
	sessoes map[string]*Sessao
}

func NewSessaoManager(store interfaces.INotaRecordStore) *SessaoManager {
	return &SessaoManager{
		store:   store,
		sessoes: make(map[string]*Sessao),
	}
}

// Obter returns the user's session, creating it on first use. Creation runs
// one synchronous full fetch so the caller sees data immediately, then
// starts polling. A role change upstream replaces the session: visibility
// and poll cadence follow the role, so the old working set cannot be reused.
func (m *SessaoManager) Obter(ctx context.Context, user entities.User) *Sessao {
	m.mu.Lock()
	if s, ok := m.sessoes[user.ID]; ok {
		if s.User.Role == user.Role {
			m.mu.Unlock()
			return s
		}
		// Stop is non-blocking, safe to call under the lock.
		log.Printf("[sessao][usecase] role changed user=%s old=%s new=%s, reopening session", user.ID, s.User.Role, user.Role)
		delete(m.sessoes, user.ID)
		s.Encerrar()
	}

	engine := NewSyncEngine(m.store)
	s := &Sessao{
		User:   user,
		Engine: engine,
		poller: NewPoller(PollInterval(user.Role), engine.Sync),
	}
	m.sessoes[user.ID] = s
	m.mu.Unlock()

	if err := engine.Sync(ctx); err != nil {
		log.Printf("[sessao][usecase] initial sync failed user=%s err=%v", user.ID, err)
	}
	s.poller.Start(context.Background())
	log.Printf("[sessao][usecase] session opened user=%s role=%s poll=%s", user.ID, user.Role, PollInterval(user.Role))
	return s
}

// Encerrar invalidates the user's session (logout), stopping its poller.
func (m *SessaoManager) Encerrar(userID string) {
	m.mu.Lock()
	s, ok := m.sessoes[userID]
	if ok {
		delete(m.sessoes, userID)
	}
	m.mu.Unlock()
	if ok {
		s.Encerrar()
	}
}
