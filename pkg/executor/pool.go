package executor

import (
	"errors"
	"sync"
)

// DefaultSize is the number of workers used when none is given.
const DefaultSize = 4

// ErrPoolClosed is returned by Submit once the pool has been shut down.
var ErrPoolClosed = errors.New("executor: pool is shut down")

// Pool runs submitted tasks on a fixed number of goroutines. Tasks run
// concurrently with no ordering guarantee between them. The queue is
// unbounded, so Submit never blocks, including from inside a running task.
type Pool struct {
	mu     sync.Mutex
	ready  *sync.Cond
	closed bool
	queue  []func()
	wg     sync.WaitGroup
}

// New starts a pool with size workers.
func New(size int) *Pool {
	if size < 1 {
		size = DefaultSize
	}
	p := &Pool{}
	p.ready = sync.NewCond(&p.mu)
	p.wg.Add(size)
	for i := 0; i < size; i++ {
		go p.work()
	}
	return p
}

func (p *Pool) work() {
	defer p.wg.Done()
	for {
		task, ok := p.next()
		if !ok {
			return
		}
		task()
	}
}

// next blocks until a task is queued. It reports false once the pool is
// shut down and the queue has drained.
func (p *Pool) next() (func(), bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for len(p.queue) == 0 && !p.closed {
		p.ready.Wait()
	}
	if len(p.queue) == 0 {
		return nil, false
	}
	task := p.queue[0]
	p.queue[0] = nil
	p.queue = p.queue[1:]
	return task, true
}

// Submit queues task for execution and returns ErrPoolClosed if the pool has
// been shut down.
func (p *Pool) Submit(task func()) error {
	if task == nil {
		return errors.New("executor: nil task")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPoolClosed
	}
	p.queue = append(p.queue, task)
	p.ready.Signal()
	return nil
}

// Shutdown stops accepting tasks. Queued and running tasks still complete.
// Calling it more than once is a no-op.
func (p *Pool) Shutdown() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	p.ready.Broadcast()
}

// Wait blocks until every worker has exited. It only returns after Shutdown.
func (p *Pool) Wait() {
	p.wg.Wait()
}

// Closed reports whether Shutdown has been called.
func (p *Pool) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}
