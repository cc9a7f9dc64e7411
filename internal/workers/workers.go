// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-time-diary/internal/config"
	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers creates the workers enabled by cfg. A zero sweep interval
// disables the session sweeper.
func NewWorkers(services *service.Services, cfg config.Workers, log *logger.Logger) *Workers {
	log.Debug().Msg("creating workers")

	w := &Workers{}
	if cfg.SessionSweepInterval > 0 && services.DiarySessions != nil {
		w.workers = append(w.workers, NewSessionSweeper(services.DiarySessions, cfg.SessionSweepInterval, log))
	}
	return w
}

// Run starts every worker and blocks until all of them have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() { worker.Run(ctx) })
	}
	wg.Wait()
}
