// Package batch runs API jobs on a fixed pool of workers, for bulk reads
// the admin CLI makes against the back-office API.
package batch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	jobTracer          = otel.Tracer("bankfront/batch")
	jobMeter           = otel.Meter("bankfront/batch")
	jobDuration, _     = jobMeter.Float64Histogram("batch.job.duration", metric.WithDescription("Job execution duration in seconds"), metric.WithUnit("s"))
	jobTotal, _        = jobMeter.Int64Counter("batch.job.total", metric.WithDescription("Total jobs executed by status"))
	jobQueueDropped, _ = jobMeter.Int64Counter("batch.job.queue_dropped", metric.WithDescription("Jobs dropped due to full queue"))
)

// Job is one unit of work.
type Job interface {
	Execute(ctx context.Context) error
	Description() string
}

// WorkerPool processes submitted jobs on workerCount goroutines.
type WorkerPool struct {
	workerCount int
	jobDelay    time.Duration
	jobTimeout  time.Duration
	jobs        chan Job
	wg          sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc

	mu     sync.Mutex
	failed int
}

// NewWorkerPool creates a pool bound to ctx. jobDelay spaces the jobs of
// each worker so bulk reads stay under the API rate limit.
func NewWorkerPool(ctx context.Context, workerCount int, jobDelay time.Duration, queueSize int) *WorkerPool {
	if workerCount < 1 {
		workerCount = 1
	}
	ctx, cancel := context.WithCancel(ctx)

	return &WorkerPool{
		workerCount: workerCount,
		jobDelay:    jobDelay,
		jobTimeout:  30 * time.Second,
		jobs:        make(chan Job, queueSize),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start() {
	log.Debug().Int("workers", wp.workerCount).Msg("starting worker pool")

	for i := 1; i <= wp.workerCount; i++ {
		wp.wg.Add(1)
		go wp.worker(i)
	}
}

func (wp *WorkerPool) worker(id int) {
	defer wp.wg.Done()

	for {
		select {
		case <-wp.ctx.Done():
			return

		case job, ok := <-wp.jobs:
			if !ok {
				return
			}

			wp.processJob(id, job)

			if wp.jobDelay > 0 {
				select {
				case <-time.After(wp.jobDelay):
				case <-wp.ctx.Done():
					return
				}
			}
		}
	}
}

func (wp *WorkerPool) processJob(workerID int, job Job) {
	ctx, cancel := context.WithTimeout(wp.ctx, wp.jobTimeout)
	defer cancel()

	ctx, span := jobTracer.Start(ctx, "job.execute",
		trace.WithAttributes(
			attribute.Int("worker.id", workerID),
			attribute.String("job.description", job.Description()),
		),
	)
	defer span.End()

	start := time.Now()

	if err := job.Execute(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		jobTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("status", "error")))
		jobDuration.Record(ctx, time.Since(start).Seconds())
		log.Warn().Err(err).Int("worker", workerID).Str("job", job.Description()).Msg("job failed")

		wp.mu.Lock()
		wp.failed++
		wp.mu.Unlock()
		return
	}

	jobTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("status", "success")))
	jobDuration.Record(ctx, time.Since(start).Seconds())
	log.Debug().Int("worker", workerID).Str("job", job.Description()).Msg("job completed")
}

// Submit queues a job without blocking. A full queue drops the job.
func (wp *WorkerPool) Submit(job Job) error {
	select {
	case <-wp.ctx.Done():
		return wp.ctx.Err()
	case wp.jobs <- job:
		return nil
	default:
		jobQueueDropped.Add(context.Background(), 1)
		return fmt.Errorf("job queue full, dropping %s", job.Description())
	}
}

// SubmitBatch queues jobs and returns how many were accepted.
func (wp *WorkerPool) SubmitBatch(jobs []Job) int {
	submitted := 0
	for _, job := range jobs {
		if err := wp.Submit(job); err != nil {
			log.Warn().Err(err).Msg("failed to submit job")
			continue
		}
		submitted++
	}
	return submitted
}

// Shutdown closes the queue, waits for the workers to drain it and returns
// the number of failed jobs.
func (wp *WorkerPool) Shutdown() int {
	close(wp.jobs)
	wp.wg.Wait()
	wp.cancel()

	wp.mu.Lock()
	defer wp.mu.Unlock()
	return wp.failed
}

// ShutdownWithTimeout is Shutdown bounded by timeout; on expiry the
// workers are cancelled and false is returned.
func (wp *WorkerPool) ShutdownWithTimeout(timeout time.Duration) bool {
	close(wp.jobs)

	done := make(chan struct{})
	go func() {
		wp.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		wp.cancel()
		return true
	case <-time.After(timeout):
		wp.cancel()
		return false
	}
}
