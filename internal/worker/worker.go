package worker

import (
	"log/slog"
	"sync"
)

// Pool is a fixed-size background task runner. Email delivery and
// geolocation lookups are submitted here so they never sit on the
// request path.
type Pool struct {
	tasks  chan func()
	wg     sync.WaitGroup
	logger *slog.Logger
	once   sync.Once
}

func NewPool(workers, queueSize int, logger *slog.Logger) *Pool {
	p := &Pool{
		tasks:  make(chan func(), queueSize),
		logger: logger,
	}

	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.run()
	}

	return p
}

func (p *Pool) run() {
	defer p.wg.Done()
	for task := range p.tasks {
		p.safeRun(task)
	}
}

func (p *Pool) safeRun(task func()) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("background task panicked", "panic", r)
		}
	}()
	task()
}

// Submit enqueues a task. It blocks when the queue is full rather than
// dropping work.
func (p *Pool) Submit(task func()) {
	p.tasks <- task
}

// Shutdown stops accepting work and waits for in-flight tasks.
func (p *Pool) Shutdown() {
	p.once.Do(func() { close(p.tasks) })
	p.wg.Wait()
}
