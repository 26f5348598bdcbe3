// Package parallel provides a bounded worker pool used to solve many
// independent scheduling scenarios concurrently. Individual solves stay
// single-threaded; parallelism exists only across whole problem
// instances, so the pool never shares a Problem between workers.
package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

// ErrPoolShutdown is returned when submitting work to a pool that has
// been shut down.
var ErrPoolShutdown = errors.New("worker pool has been shut down")

// WorkerPool runs submitted tasks on a fixed number of goroutines. The
// task channel is buffered so submission applies backpressure instead
// of queueing unboundedly when every worker is busy.
type WorkerPool struct {
	maxWorkers   int
	taskChan     chan func()
	workerWg     sync.WaitGroup
	shutdownChan chan struct{}
	once         sync.Once
}

// NewWorkerPool creates a pool with the given number of workers. A
// non-positive count defaults to the number of CPU cores.
func NewWorkerPool(maxWorkers int) *WorkerPool {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}

	pool := &WorkerPool{
		maxWorkers:   maxWorkers,
		taskChan:     make(chan func(), maxWorkers*2),
		shutdownChan: make(chan struct{}),
	}
	for i := 0; i < maxWorkers; i++ {
		pool.workerWg.Add(1)
		go pool.worker()
	}
	return pool
}

func (wp *WorkerPool) worker() {
	defer wp.workerWg.Done()
	for {
		select {
		case task := <-wp.taskChan:
			if task != nil {
				task()
			}
		case <-wp.shutdownChan:
			return
		}
	}
}

// Submit hands a task to the pool, blocking while all workers are busy
// and the buffer is full. It returns the context error on cancellation
// and ErrPoolShutdown after Shutdown.
func (wp *WorkerPool) Submit(ctx context.Context, task func()) error {
	// Checked first: with buffer space free the send below would race
	// the closed shutdown channel inside one select.
	select {
	case <-wp.shutdownChan:
		return ErrPoolShutdown
	default:
	}
	select {
	case wp.taskChan <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-wp.shutdownChan:
		return ErrPoolShutdown
	}
}

// Shutdown stops the pool, waiting for running tasks to finish. Tasks
// still sitting in the buffer are dropped.
func (wp *WorkerPool) Shutdown() {
	wp.once.Do(func() {
		close(wp.shutdownChan)
		wp.workerWg.Wait()
	})
}
