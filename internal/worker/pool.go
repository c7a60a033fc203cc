package worker

import (
	"context"
	"slices"
	"sync"
)

// Job represents a unit of work to be executed
type Job interface {
	Execute(ctx context.Context) Result
}

// Result represents the result of a job execution
type Result interface {
	GetError() error
}

type sequencedJob struct {
	seq int
	job Job
}

// Pool runs jobs on a fixed number of goroutines.
// Wait returns results in submission order regardless of completion order.
type Pool struct {
	workers    int
	jobQueue   chan sequencedJob
	collector  *ResultCollector
	wg         sync.WaitGroup
	ctx        context.Context
	cancelFunc context.CancelFunc

	mu     sync.Mutex
	next   int
	closed bool
}

// NewPool creates a pool whose jobs run under a context derived from ctx
func NewPool(ctx context.Context, workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)

	return &Pool{
		workers:    workers,
		jobQueue:   make(chan sequencedJob, workers*2),
		collector:  NewResultCollector(),
		ctx:        ctx,
		cancelFunc: cancel,
	}
}

// Start starts the worker goroutines
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker drains the queue; cancellation is left to each job via its context
func (p *Pool) worker() {
	defer p.wg.Done()

	for sj := range p.jobQueue {
		p.collector.Add(sj.seq, sj.job.Execute(p.ctx))
	}
}

// Submit queues a job. It returns false once the pool has been closed
// or its context is done.
func (p *Pool) Submit(job Job) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return false
	}

	select {
	case <-p.ctx.Done():
		return false
	case p.jobQueue <- sequencedJob{seq: p.next, job: job}:
		p.next++
		return true
	}
}

// Wait closes the queue, waits for every queued job and returns the results
// in submission order
func (p *Pool) Wait() []Result {
	p.closeQueue()
	p.wg.Wait()
	return p.collector.Results()
}

// Shutdown cancels running jobs, stops accepting new ones and waits for workers to exit
func (p *Pool) Shutdown() {
	p.cancelFunc()
	p.closeQueue()
	p.wg.Wait()
}

func (p *Pool) closeQueue() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.closed {
		p.closed = true
		close(p.jobQueue)
	}
}

// ResultCollector gathers results from concurrent workers
type ResultCollector struct {
	results []sequencedResult
	mu      sync.Mutex
}

type sequencedResult struct {
	seq    int
	result Result
}

// NewResultCollector creates a new result collector
func NewResultCollector() *ResultCollector {
	return &ResultCollector{}
}

// Add records the result of the job submitted at position seq (thread-safe)
func (c *ResultCollector) Add(seq int, result Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = append(c.results, sequencedResult{seq: seq, result: result})
}

// Results returns collected results ordered by submission position
func (c *ResultCollector) Results() []Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	sorted := slices.Clone(c.results)
	slices.SortFunc(sorted, func(a, b sequencedResult) int { return a.seq - b.seq })

	out := make([]Result, len(sorted))
	for i, sr := range sorted {
		out[i] = sr.result
	}
	return out
}
