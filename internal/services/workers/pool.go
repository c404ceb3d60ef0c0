// Package workers provides the bounded worker pool used by bulk ingestion.
package workers

import (
	"context"
	"fmt"
	"sync"

	"github.com/ternarybob/arbor"
)

// Task is one unit of work executed on a pool worker.
type Task func(ctx context.Context) error

// Pool runs tasks on a fixed number of goroutines. Task errors are
// collected, not propagated; the caller inspects them after Wait.
type Pool struct {
	tasks      chan Task
	maxWorkers int
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
	errors     []error
	errorsMu   sync.Mutex
	logger     arbor.ILogger
}

// NewPool creates a pool bound to the parent context. Cancelling the parent
// stops workers between tasks; in-flight tasks see the cancellation through
// their own context argument.
func NewPool(parent context.Context, maxWorkers int, logger arbor.ILogger) *Pool {
	if maxWorkers <= 0 {
		maxWorkers = 4
	}

	ctx, cancel := context.WithCancel(parent)

	return &Pool{
		tasks:      make(chan Task, maxWorkers*2),
		maxWorkers: maxWorkers,
		ctx:        ctx,
		cancel:     cancel,
		errors:     make([]error, 0),
		logger:     logger,
	}
}

// Start launches the workers.
func (p *Pool) Start() {
	p.logger.Debug().
		Int("max_workers", p.maxWorkers).
		Msg("Starting worker pool")

	for i := 0; i < p.maxWorkers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

// Submit queues a task. Fails only when the pool is shutting down.
func (p *Pool) Submit(task Task) error {
	select {
	case p.tasks <- task:
		return nil
	case <-p.ctx.Done():
		return fmt.Errorf("worker pool is shutting down")
	}
}

// Wait closes the queue and blocks until every queued task has finished.
func (p *Pool) Wait() {
	close(p.tasks)
	p.wg.Wait()
	p.cancel()
}

// Errors returns the errors collected from failed tasks.
func (p *Pool) Errors() []error {
	p.errorsMu.Lock()
	defer p.errorsMu.Unlock()
	return p.errors
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case task, ok := <-p.tasks:
			if !ok {
				return
			}

			if err := task(p.ctx); err != nil {
				p.errorsMu.Lock()
				p.errors = append(p.errors, err)
				p.errorsMu.Unlock()

				p.logger.Debug().
					Err(err).
					Int("worker_id", id).
					Msg("Task failed")
			}

		case <-p.ctx.Done():
			return
		}
	}
}
