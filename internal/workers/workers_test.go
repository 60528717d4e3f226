// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/metrics"
	"github.com/MKhiriev/go-key-keeper/internal/mock"
)

// recordingWorker counts Start and Stop calls and records stop order.
type recordingWorker struct {
	id      int
	starts  int
	stopped *[]int
}

func (w *recordingWorker) Start(context.Context) { w.starts++ }
func (w *recordingWorker) Stop()                 { *w.stopped = append(*w.stopped, w.id) }

func TestWorkers_StartStop(t *testing.T) {
	var stopped []int
	w1 := &recordingWorker{id: 1, stopped: &stopped}
	w2 := &recordingWorker{id: 2, stopped: &stopped}

	ws := &Workers{workers: []Worker{w1, w2}}
	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, 1, w1.starts)
	assert.Equal(t, 1, w2.starts)
	assert.Equal(t, []int{2, 1}, stopped)
}

func TestWorkers_Empty(t *testing.T) {
	ws := &Workers{}

	ws.Start(context.Background())
	ws.Stop()
}

func TestRevocationPurger_PurgesOnStartAndTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	revocations := mock.NewMockProofRevocationRepository(ctrl)
	m := metrics.New()

	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var calls atomic.Int32
	revocations.EXPECT().PurgeExpired(gomock.Any(), fixed).DoAndReturn(
		func(context.Context, time.Time) (int64, error) {
			calls.Add(1)
			return 2, nil
		}).MinTimes(2)

	p := NewRevocationPurger(revocations, 10*time.Millisecond, m, logger.Nop()).(*revocationPurger)
	p.now = func() time.Time { return fixed }

	p.Start(context.Background())
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	p.Stop()

	assert.GreaterOrEqual(t, testutil.ToFloat64(m.RevocationsPurgedTotal), float64(4))
}

func TestRevocationPurger_ErrorDoesNotStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	revocations := mock.NewMockProofRevocationRepository(ctrl)

	var calls atomic.Int32
	revocations.EXPECT().PurgeExpired(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, time.Time) (int64, error) {
			calls.Add(1)
			return 0, errors.New("db down")
		}).MinTimes(2)

	p := NewRevocationPurger(revocations, 10*time.Millisecond, metrics.New(), logger.Nop())
	p.Start(context.Background())
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	p.Stop()
}

func TestRevocationPurger_StopIsIdempotent(t *testing.T) {
	p := NewRevocationPurger(nil, 0, metrics.New(), logger.Nop()).(*revocationPurger)
	assert.Equal(t, defaultPurgeInterval, p.interval)

	p.Stop()
	p.Stop()
}

func TestRevocationPurger_ContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	revocations := mock.NewMockProofRevocationRepository(ctrl)
	revocations.EXPECT().PurgeExpired(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()

	p := NewRevocationPurger(revocations, time.Hour, metrics.New(), logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		p.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("purger did not exit after context cancellation")
	}
}
