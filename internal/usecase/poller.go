package usecase

import (
	"context"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"fluxo_notas/internal/domain/entities"
)

// Poll cadences per consuming role. Finance queues move fastest; requester
// views tolerate more staleness. Overridable via POLL_FINANCEIRO_SEGUNDOS,
// POLL_FISCAL_SEGUNDOS and POLL_SOLICITANTE_SEGUNDOS.
const (
	defaultPollFinanceiro  = 10 * time.Second
	defaultPollFiscal      = 15 * time.Second
	defaultPollSolicitante = 30 * time.Second
)

// PollInterval resolves the polling cadence for a role.
func PollInterval(role entities.Role) time.Duration {
	switch {
	case role.IsFinanceiro():
		return envSeconds("POLL_FINANCEIRO_SEGUNDOS", defaultPollFinanceiro)
	case role.IsFiscal():
		return envSeconds("POLL_FISCAL_SEGUNDOS", defaultPollFiscal)
	default:
		return envSeconds("POLL_SOLICITANTE_SEGUNDOS", defaultPollSolicitante)
	}
}

func envSeconds(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return def
}

// Poller drives a sync function on a fixed cadence. It is owned by a view's
// (session's) lifecycle: Stop prevents further scheduling, while an in-flight
// sync is allowed to complete and its result is simply discarded with the
// set.
type Poller struct {
	interval time.Duration
	sync     func(ctx context.Context) error
	stop     chan struct{}
	stopOnce sync.Once
}

func NewPoller(interval time.Duration, sync func(ctx context.Context) error) *Poller {
	return &Poller{
		interval: interval,
		sync:     sync,
		stop:     make(chan struct{}),
	}
}

// Start launches the polling loop. The owning session runs the first sync
// itself so the initial view render has data; tick errors are logged and
// retried on the next tick.
func (p *Poller) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-p.stop:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := p.sync(ctx); err != nil {
					log.Printf("[poller][usecase] sync failed err=%v", err)
				}
			}
		}
	}()
}

// Stop ends the polling loop. Safe to call more than once.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() { close(p.stop) })
}
