package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type countingWorker struct {
	runs    atomic.Int32
	outcome func(runs int32) error
}

func (w *countingWorker) Run(ctx context.Context) error {
	return w.outcome(w.runs.Add(1))
}

func TestWorkerName(t *testing.T) {
	req := require.New(t)
	req.Equal("countingWorker", WorkerName(&countingWorker{}))
	req.Equal("NilWorker", WorkerName(nil))
}

func TestSupervisor_WorkerFinishingCleanlyIsNotRestarted(t *testing.T) {
	req := require.New(t)
	worker := &countingWorker{outcome: func(int32) error { return nil }}

	supervisor := NewSupervisor(slog.Default()).Add(worker)
	done := make(chan struct{})
	go func() {
		supervisor.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		req.FailNow("supervisor did not return after worker finished")
	}
	req.Equal(int32(1), worker.runs.Load())
}

func TestSupervisor_CrashedWorkerIsRestarted(t *testing.T) {
	req := require.New(t)
	restarted := make(chan struct{})
	worker := &countingWorker{outcome: func(runs int32) error {
		if runs == 1 {
			return fmt.Errorf("transient failure")
		}
		close(restarted)
		return nil
	}}

	supervisor := NewSupervisor(slog.Default()).Add(worker)
	go supervisor.Run(context.Background())

	select {
	case <-restarted:
	case <-time.After(2 * time.Second):
		req.FailNow("worker was never restarted")
	}
}

func TestSupervisor_PanickingWorkerIsRestarted(t *testing.T) {
	req := require.New(t)
	restarted := make(chan struct{})
	worker := &countingWorker{outcome: func(runs int32) error {
		if runs == 1 {
			panic("boom")
		}
		close(restarted)
		return nil
	}}

	supervisor := NewSupervisor(slog.Default()).Add(worker)
	go supervisor.Run(context.Background())

	select {
	case <-restarted:
	case <-time.After(2 * time.Second):
		req.FailNow("worker was never restarted after panic")
	}
}

func TestSupervisor_StopCancelsWorkers(t *testing.T) {
	req := require.New(t)
	started := make(chan struct{})
	worker := &countingWorker{outcome: func(int32) error {
		close(started)
		return nil
	}}

	blocking := &blockingWorker{}
	supervisor := NewSupervisor(slog.Default()).Add(worker, blocking)

	done := make(chan struct{})
	go func() {
		supervisor.Run(context.Background())
		close(done)
	}()

	<-started
	supervisor.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		req.FailNow("supervisor did not stop all workers")
	}
}

type blockingWorker struct{}

func (w *blockingWorker) Run(ctx context.Context) error {
	<-ctx.Done()
	return nil
}
