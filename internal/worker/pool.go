package worker

import (
	"context"
	"errors"
	"sync"

	"github.com/osse101/TemplateOverrides_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to Job
type JobFunc func(ctx context.Context) error

// Process calls f
func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// Pool is a fixed-size worker pool. Jobs are enqueued, then Wait closes the
// queue and blocks until every job has run. A pool is used once.
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup

	mu   sync.Mutex
	errs []error
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
	}
}

// Start starts the workers. Jobs picked up after ctx is done fail with the
// context's error without running.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()
	for job := range p.jobQueue {
		err := ctx.Err()
		if err == nil {
			err = job.Process(ctx)
		}
		if err != nil {
			logger.FromContext(ctx).Debug(LogMsgWorkerJobFailed, "error", err)
			p.mu.Lock()
			p.errs = append(p.errs, err)
			p.mu.Unlock()
		}
	}
}

// Enqueue adds a job to the queue, blocking while the queue is full. It must
// not be called after Wait.
func (p *Pool) Enqueue(job Job) {
	p.jobQueue <- job
}

// Wait closes the queue, waits for the workers to drain it and returns the
// job errors joined together.
func (p *Pool) Wait() error {
	close(p.jobQueue)
	p.wg.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	return errors.Join(p.errs...)
}
