package worker

import "sync"

// Task is a unit of work executed by the pool.
type Task func()

// Pool runs submitted tasks on a fixed number of goroutines. The service
// owns one pool for the process lifetime; request handling itself stays on
// echo's per-request goroutines.
type Pool interface {
	Submit(Task)
	Stop()
}

// NewPool starts a pool with n workers. n <= 0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{tasks: make(chan Task)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.worker()
	}
	return p
}

type pool struct {
	tasks chan Task
	wg    sync.WaitGroup
}

func (p *pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		if task != nil {
			task()
		}
	}
}

func (p *pool) Submit(t Task) {
	p.tasks <- t
}

// Stop waits for queued tasks to finish. Submit after Stop panics.
func (p *pool) Stop() {
	close(p.tasks)
	p.wg.Wait()
}
