package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/ternarybob/arbor"
)

func TestPoolRunsAllTasks(t *testing.T) {
	pool := NewPool(context.Background(), 4, arbor.NewLogger())
	pool.Start()

	var done int64
	for i := 0; i < 50; i++ {
		err := pool.Submit(func(ctx context.Context) error {
			atomic.AddInt64(&done, 1)
			return nil
		})
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
	pool.Wait()

	if done != 50 {
		t.Errorf("done = %d, want 50", done)
	}
	if len(pool.Errors()) != 0 {
		t.Errorf("Errors = %v", pool.Errors())
	}
}

func TestPoolCollectsErrors(t *testing.T) {
	pool := NewPool(context.Background(), 2, arbor.NewLogger())
	pool.Start()

	boom := errors.New("boom")
	for i := 0; i < 5; i++ {
		i := i
		pool.Submit(func(ctx context.Context) error {
			if i%2 == 0 {
				return boom
			}
			return nil
		})
	}
	pool.Wait()

	if got := len(pool.Errors()); got != 3 {
		t.Errorf("collected %d errors, want 3", got)
	}
}

func TestPoolDefaultsWorkerCount(t *testing.T) {
	pool := NewPool(context.Background(), 0, arbor.NewLogger())
	pool.Start()

	var ran int64
	pool.Submit(func(ctx context.Context) error {
		atomic.AddInt64(&ran, 1)
		return nil
	})
	pool.Wait()

	if ran != 1 {
		t.Error("task did not run with defaulted worker count")
	}
}

func TestPoolRejectsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := NewPool(ctx, 1, arbor.NewLogger())

	// Workers never started: fill the queue buffer so further submissions
	// block, then cancel. Submit must fail instead of hanging.
	noop := func(ctx context.Context) error { return nil }
	pool.Submit(noop)
	pool.Submit(noop)
	cancel()

	if err := pool.Submit(noop); err == nil {
		t.Error("submit on a cancelled full pool succeeded")
	}
}
