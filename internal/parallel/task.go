package parallel

import (
	"errors"
	"fmt"
)

// Task errors.
var (
	// ErrPoolClosed is returned by a task that was submitted to a closed pool.
	ErrPoolClosed = errors.New("parallel: pool closed")

	// ErrTaskPanic wraps a panic recovered from a task function.
	ErrTaskPanic = errors.New("parallel: task panicked")
)

// Task is a handle to one unit of work running on a WorkerPool.
type Task struct {
	done chan struct{}
	err  error
}

// Go submits fn to the pool and returns a handle to its result.
// A panic in fn is recovered and reported as ErrTaskPanic; it never takes
// down the worker or sibling tasks. If the pool is closed, the returned
// task is already finished with ErrPoolClosed.
func (p *WorkerPool) Go(fn func() error) *Task {
	t := &Task{done: make(chan struct{})}

	if !p.Submit(func() { t.run(fn) }) {
		t.err = ErrPoolClosed
		close(t.done)
	}
	return t
}

func (t *Task) run(fn func() error) {
	defer close(t.done)
	defer func() {
		if r := recover(); r != nil {
			t.err = fmt.Errorf("%w: %v", ErrTaskPanic, r)
		}
	}()
	t.err = fn()
}

// Wait blocks until the task has finished and returns its error.
func (t *Task) Wait() error {
	<-t.done
	return t.err
}

// Done returns a channel that is closed when the task finishes.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Group is an ordered collection of tasks joined together.
//
// Tasks are launched as soon as they are added; only the wait is grouped.
// A Group is not safe for concurrent Go calls.
type Group struct {
	pool  *WorkerPool
	tasks []*Task
}

// NewGroup creates an empty group that launches its tasks on pool.
func NewGroup(pool *WorkerPool) *Group {
	return &Group{pool: pool}
}

// Go launches fn on the group's pool.
func (g *Group) Go(fn func() error) {
	g.tasks = append(g.tasks, g.pool.Go(fn))
}

// Len returns the number of tasks launched in the group.
func (g *Group) Len() int {
	return len(g.tasks)
}

// Wait blocks until every task in the group has finished. The returned
// slice holds each task's error in launch order; nil entries succeeded.
func (g *Group) Wait() []error {
	errs := make([]error, len(g.tasks))
	for i, t := range g.tasks {
		errs[i] = t.Wait()
	}
	return errs
}
