package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"survey-dialer/internal/observability"
)

var (
	ErrPoolNotStarted   = errors.New("worker pool not started")
	ErrPoolShuttingDown = errors.New("worker pool is shutting down")
	ErrDrainTimeout     = errors.New("drain timeout exceeded")
	ErrTaskPanicked     = errors.New("task panicked")
)

// ProcessingResult represents the result of processing a task.
type ProcessingResult[T any] struct {
	Task  T
	Error error
}

// ResultCallback is called after each task is processed. It may be called
// from several workers at once.
type ResultCallback[T any] func(result ProcessingResult[T])

// WorkerPoolConfig holds configuration for the worker pool.
type WorkerPoolConfig[T any] struct {
	// NumWorkers is the number of tasks processed at the same time.
	NumWorkers int

	// QueueSize bounds the tasks waiting for a worker. Submit blocks
	// while the queue is full.
	QueueSize int

	// DrainTimeout bounds how long Drain waits for queued and in-flight
	// tasks before stopping the workers.
	DrainTimeout time.Duration

	// OnResult receives every processed task (optional). Tasks dropped by
	// Stop or a drain timeout are not reported.
	OnResult ResultCallback[T]
}

// DefaultWorkerPoolConfig returns the values used for unset fields.
func DefaultWorkerPoolConfig[T any]() WorkerPoolConfig[T] {
	return WorkerPoolConfig[T]{
		NumWorkers:   4,
		QueueSize:    64,
		DrainTimeout: 2 * time.Minute,
	}
}

type poolState int

const (
	stateIdle poolState = iota
	stateRunning
	stateDraining
	stateStopped
)

type pool[T any] struct {
	config    WorkerPoolConfig[T]
	processor Processor[T]
	logger    *observability.Logger

	tasks chan T
	wg    sync.WaitGroup

	// sendMu is held for reading while a Submit sends on tasks and for
	// writing while tasks is closed.
	sendMu   sync.RWMutex
	closed   bool
	stopped  chan struct{}
	stopOnce sync.Once

	mu     sync.Mutex
	state  poolState
	cancel context.CancelFunc
}

// NewWorkerPool creates a pool that runs processor on submitted tasks.
func NewWorkerPool[T any](
	config WorkerPoolConfig[T],
	processor Processor[T],
	logger *observability.Logger,
) WorkerPool[T] {
	defaults := DefaultWorkerPoolConfig[T]()
	if config.NumWorkers <= 0 {
		config.NumWorkers = defaults.NumWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = defaults.QueueSize
	}
	if config.DrainTimeout <= 0 {
		config.DrainTimeout = defaults.DrainTimeout
	}

	return &pool[T]{
		config:    config,
		processor: processor,
		logger:    logger,
		tasks:     make(chan T, config.QueueSize),
		stopped:   make(chan struct{}),
	}
}

// Start launches the workers. Workers stop when ctx is cancelled.
func (p *pool[T]) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state {
	case stateRunning, stateDraining:
		return fmt.Errorf("%s pool already started", p.processor.Name())
	case stateStopped:
		return fmt.Errorf("%s pool already stopped", p.processor.Name())
	}

	workerCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.state = stateRunning

	for id := range p.config.NumWorkers {
		p.wg.Add(1)
		go p.run(workerCtx, id)
	}

	p.logger.Debug(ctx, fmt.Sprintf("started %d %s workers", p.config.NumWorkers, p.processor.Name()))
	return nil
}

// Submit queues a task, blocking while the queue is full.
func (p *pool[T]) Submit(ctx context.Context, task T) error {
	p.sendMu.RLock()
	defer p.sendMu.RUnlock()

	p.mu.Lock()
	state := p.state
	p.mu.Unlock()

	switch state {
	case stateIdle:
		return ErrPoolNotStarted
	case stateDraining, stateStopped:
		return ErrPoolShuttingDown
	}

	select {
	case p.tasks <- task:
		return nil
	case <-p.stopped:
		return ErrPoolShuttingDown
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Drain closes the queue and waits for every queued task. Past
// DrainTimeout the workers are stopped and ErrDrainTimeout is returned.
func (p *pool[T]) Drain(ctx context.Context) error {
	p.mu.Lock()
	switch p.state {
	case stateIdle:
		p.mu.Unlock()
		return ErrPoolNotStarted
	case stateDraining, stateStopped:
		p.mu.Unlock()
		return ErrPoolShuttingDown
	}
	p.state = stateDraining
	p.mu.Unlock()
	p.closeQueue()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(p.config.DrainTimeout)
	defer timer.Stop()

	select {
	case <-done:
		p.markStopped()
		p.logger.Debug(ctx, fmt.Sprintf("drained %s pool", p.processor.Name()))
		return nil
	case <-timer.C:
	case <-ctx.Done():
	}

	p.logger.Warn(ctx, fmt.Sprintf("%s pool did not drain within %s, stopping workers",
		p.processor.Name(), p.config.DrainTimeout))
	p.Stop()
	return ErrDrainTimeout
}

// Stop cancels the workers without waiting. Queued tasks are dropped
// without being reported.
func (p *pool[T]) Stop() {
	p.markStopped()
	p.closeQueue()
}

// markStopped cancels the workers and releases blocked submitters.
func (p *pool[T]) markStopped() {
	p.mu.Lock()
	p.state = stateStopped
	if p.cancel != nil {
		p.cancel()
	}
	p.mu.Unlock()
	p.stopOnce.Do(func() { close(p.stopped) })
}

func (p *pool[T]) closeQueue() {
	p.sendMu.Lock()
	defer p.sendMu.Unlock()
	if !p.closed {
		close(p.tasks)
		p.closed = true
	}
}

func (p *pool[T]) run(ctx context.Context, workerID int) {
	defer p.wg.Done()

	workerCtx := observability.WithFields(ctx,
		observability.Field{Key: "worker_id", Value: workerID},
		observability.Field{Key: "processor", Value: p.processor.Name()},
	)

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-p.tasks:
			if !ok {
				return
			}
			// select is random between a cancelled ctx and a ready task
			if ctx.Err() != nil {
				return
			}
			p.process(workerCtx, task)
		}
	}
}

// process runs one task and reports its result. A panicking task is
// reported as failed and the worker keeps going.
func (p *pool[T]) process(ctx context.Context, task T) {
	if fp, ok := any(task).(FieldsProvider); ok {
		ctx = observability.WithFields(ctx, fp.Fields()...)
	}

	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %v", ErrTaskPanicked, r)
			}
		}()
		return p.processor.Process(ctx, task)
	}()

	if err != nil {
		p.logger.Error(ctx, "task failed", err)
	} else {
		p.logger.Debug(ctx, "task processed")
	}

	if p.config.OnResult != nil {
		p.config.OnResult(ProcessingResult[T]{Task: task, Error: err})
	}
}
