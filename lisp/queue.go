package lisp

import (
	"log"
	"os"
	"sync"
)

const queueLength = 1

// Queue converts several files concurrently.
type Queue struct {
	conv       *Converter
	maxWorkers int

	jobs    chan *jobSpec
	workers *sync.WaitGroup
}

// NewQueue creates a new conversion queue.  At most `maxWorkers` files
// are converted at the same time.
func NewQueue(conv *Converter, maxWorkers int) *Queue {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	q := &Queue{
		conv:       conv,
		maxWorkers: maxWorkers,
		jobs:       make(chan *jobSpec, queueLength),
		workers:    &sync.WaitGroup{},
	}
	go q.scheduler(q.jobs)
	return q
}

// Finish must be called after the last job has been submitted to the
// queue.  The function waits until all jobs are completed and then
// shuts down the queue.
func (q *Queue) Finish() {
	close(q.jobs)
	q.workers.Wait()
}

func (q *Queue) scheduler(jobs <-chan *jobSpec) {
	workers := make(chan int, q.maxWorkers)
	for i := 0; i < q.maxWorkers; i++ {
		workers <- i
	}

	for job := range jobs {
		worker := <-workers
		go func(job *jobSpec) {
			err := q.process(job)
			workers <- worker
			if err != nil {
				log.Printf("%s: %s", job.Input, err)
			}
			job.Result <- err
			close(job.Result)
			q.workers.Done()
		}(job)
	}
}

// Submit adds a new conversion job to the queue.  The file
// `inputFileName` is converted to the given format and the result is
// written to `outputFileName`.  The outcome of the conversion can be
// read from the channel returned by .Submit().
func (q *Queue) Submit(inputFileName, outputFileName, format string) <-chan error {
	c := make(chan error, 1)
	job := &jobSpec{
		Input:  inputFileName,
		Output: outputFileName,
		Format: format,
		Result: c,
	}
	q.workers.Add(1)
	q.jobs <- job
	return c
}

type jobSpec struct {
	Input  string
	Output string
	Format string
	Result chan<- error
}

func (q *Queue) process(job *jobSpec) (err error) {
	out, err := os.Create(job.Output)
	if err != nil {
		return err
	}
	defer func() {
		e2 := out.Close()
		if err == nil {
			err = e2
		}
		if err != nil {
			_ = os.Remove(job.Output)
		}
	}()

	return q.conv.Convert(out, job.Input, job.Format)
}
