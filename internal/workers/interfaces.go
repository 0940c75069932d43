package workers

import (
	"context"

	"survey-dialer/internal/observability"
)

// Processor handles tasks of one kind. Implementations must isolate
// failures: an error for one task never affects another.
type Processor[T any] interface {
	// Process handles a single task.
	Process(ctx context.Context, task T) error

	// Name returns the processor name for logging.
	Name() string
}

// FieldsProvider is implemented by tasks that add log fields while they
// are processed.
type FieldsProvider interface {
	Fields() []observability.Field
}

// WorkerPool defines the interface for managing a pool of workers.
type WorkerPool[T any] interface {
	// Start initializes the worker pool with N workers.
	Start(ctx context.Context) error

	// Submit adds a task to the pool. Blocks if the queue is full.
	// Submit must not be called concurrently with Drain.
	Submit(ctx context.Context, task T) error

	// Drain stops accepting new tasks and waits for in-flight tasks to complete.
	Drain(ctx context.Context) error

	// Stop immediately stops all workers.
	Stop()
}
