package workers

import (
	"context"

	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/metrics"
	"github.com/MKhiriev/go-key-keeper/internal/store"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(storages *store.Storages, cfg config.Workers, m *metrics.Metrics, logger *logger.Logger) *Workers {
	return &Workers{workers: []Worker{
		NewRevocationPurger(storages.ProofRevocationRepository, cfg.PurgeInterval, m, logger),
	}}
}

func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
