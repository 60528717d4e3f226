package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/metrics"
	"github.com/MKhiriev/go-key-keeper/internal/store"
)

const defaultPurgeInterval = 10 * time.Minute

type revocationPurger struct {
	revocations store.ProofRevocationRepository
	metrics     *metrics.Metrics
	interval    time.Duration
	now         func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewRevocationPurger returns a worker that removes revocations of proofs
// that have expired anyway. A non-positive interval means 10 minutes.
func NewRevocationPurger(revocations store.ProofRevocationRepository, interval time.Duration, m *metrics.Metrics, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultPurgeInterval
	}

	return &revocationPurger{
		revocations: revocations,
		metrics:     m,
		interval:    interval,
		now:         time.Now,
		logger:      logger,
	}
}

// Start stops any previous run, purges once and then on every tick until
// ctx is cancelled or Stop is called.
func (p *revocationPurger) Start(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		p.purge(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				p.purge(jobCtx)
			}
		}
	}()
}

func (p *revocationPurger) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

func (p *revocationPurger) purge(ctx context.Context) {
	n, err := p.revocations.PurgeExpired(ctx, p.now())
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Err(err).Str("func", "*revocationPurger.purge").Msg("error purging expired revocations")
		}
		return
	}

	p.metrics.ObserveRevocationsPurged(n)
	if n > 0 {
		p.logger.Debug().Int64("purged", n).Msg("expired revocations purged")
	}
}
