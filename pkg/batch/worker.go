// Package batch drives many independent Z80 cores concurrently, one per
// loaded program image, and collects their outcomes into a report.Table.
package batch

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/oisee/z80core/pkg/report"
	"github.com/oisee/z80core/pkg/z80"
)

// Job is one unit of batch work: a memory image to load at 0x0000, the
// entry PC to start at, and a cap on the number of steps to run before
// giving up on ever halting.
type Job struct {
	Name     string
	Image    []uint8
	EntryPC  uint16
	MaxSteps int
}

// WorkerPool distributes jobs across goroutines, each running its own
// *z80.CPU. No CPU is ever shared across goroutines.
type WorkerPool struct {
	NumWorkers int
	Results    *report.Table

	run    atomic.Int64
	halted atomic.Int64
}

// NewWorkerPool creates a pool with the given number of workers. A
// non-positive count defaults to runtime.NumCPU().
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		NumWorkers: numWorkers,
		Results:    report.NewTable(),
	}
}

// Stats returns the number of jobs run so far and how many halted on
// their own rather than hitting their step budget.
func (wp *WorkerPool) Stats() (run, halted int64) {
	return wp.run.Load(), wp.halted.Load()
}

// RunJobs distributes jobs across wp.NumWorkers goroutines over a
// buffered channel and blocks until every job has been processed.
func (wp *WorkerPool) RunJobs(jobs []Job) {
	ch := make(chan Job, len(jobs))
	for _, j := range jobs {
		ch <- j
	}
	close(ch)

	var wg sync.WaitGroup
	for i := 0; i < wp.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range ch {
				wp.processJob(job)
			}
		}()
	}
	wg.Wait()
}

// processJob loads job.Image into a fresh CPU, seeds PC, and steps it
// either to HALT or to job.MaxSteps, whichever comes first.
func (wp *WorkerPool) processJob(job Job) {
	c := z80.NewCPU()
	c.LoadBytes(0, job.Image)
	c.SetPC(job.EntryPC)

	steps := 0
	for steps < job.MaxSteps && !c.Halted {
		c.Step()
		steps++
	}

	wp.run.Add(1)
	if c.Halted {
		wp.halted.Add(1)
	}

	wp.Results.Add(report.RunResult{
		Name:    job.Name,
		Steps:   steps,
		Halted:  c.Halted,
		FinalPC: c.PC,
		FinalSP: c.SP,
		A:       c.A,
		F:       c.F,
	})
}
