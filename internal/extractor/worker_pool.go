package extractor

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// WorkerPool fans a batch of images out over parallel OCR workers. OCR is
// CPU-bound and each image is independent, so images parallelize
// trivially; the pipeline itself imposes no ordering between them.
type WorkerPool struct {
	ctx            context.Context
	tasks          chan Task
	results        chan TaskResult
	progressChan   chan ProgressUpdate
	cancel         context.CancelFunc
	wg             sync.WaitGroup
	options        ExtractionOptions
	numWorkers     int
	totalTasks     int
	completedTasks int
	mu             sync.Mutex
}

// Task is a single image to process.
type Task struct {
	ID   string
	Path string
}

// TaskResult pairs a task with its extraction outcome.
type TaskResult struct {
	Task   Task
	Result *ExtractionResult
}

// ProgressUpdate reports the state of one task within the batch.
type ProgressUpdate struct {
	TaskID      string
	Path        string
	Status      TaskStatus
	Message     string
	Completed   int
	Total       int
	ElapsedTime time.Duration
}

// TaskStatus represents the processing state of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusProcessing TaskStatus = "processing"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusFailed     TaskStatus = "failed"
)

// NewWorkerPool creates a pool of OCR workers sharing one option set.
func NewWorkerPool(numWorkers int, options ExtractionOptions) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = 4
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &WorkerPool{
		numWorkers:   numWorkers,
		options:      options,
		tasks:        make(chan Task, numWorkers*2),
		results:      make(chan TaskResult, numWorkers*2),
		progressChan: make(chan ProgressUpdate, 100),
		ctx:          ctx,
		cancel:       cancel,
	}
}

// Start launches the workers.
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(i)
	}
}

func (wp *WorkerPool) worker(workerID int) {
	defer wp.wg.Done()

	ext := New(wp.options)

	for {
		select {
		case <-wp.ctx.Done():
			return
		case task, ok := <-wp.tasks:
			if !ok {
				return
			}

			wp.processTask(workerID, task, ext)
		}
	}
}

func (wp *WorkerPool) processTask(workerID int, task Task, ext *Extractor) {
	start := time.Now()

	wp.sendProgress(ProgressUpdate{
		TaskID: task.ID,
		Path:   task.Path,
		Status: TaskStatusProcessing,
	})

	result := ext.ProcessImage(task.Path)
	elapsed := time.Since(start)

	wp.mu.Lock()
	wp.completedTasks++
	completed := wp.completedTasks
	total := wp.totalTasks
	wp.mu.Unlock()

	status := TaskStatusCompleted
	message := fmt.Sprintf("worker %d finished in %v", workerID, elapsed)

	if !result.OK() {
		status = TaskStatusFailed
		message = result.Err.Message
	}

	wp.sendProgress(ProgressUpdate{
		TaskID:      task.ID,
		Path:        task.Path,
		Status:      status,
		Completed:   completed,
		Total:       total,
		ElapsedTime: elapsed,
		Message:     message,
	})

	wp.results <- TaskResult{Task: task, Result: result}
}

// sendProgress delivers a progress update unless the channel is full.
func (wp *WorkerPool) sendProgress(update ProgressUpdate) {
	select {
	case wp.progressChan <- update:
	default:
		// Skip the update rather than block a worker.
	}
}

// Submit queues a task for processing.
func (wp *WorkerPool) Submit(task Task) {
	wp.mu.Lock()
	wp.totalTasks++
	wp.mu.Unlock()

	wp.sendProgress(ProgressUpdate{
		TaskID: task.ID,
		Path:   task.Path,
		Status: TaskStatusPending,
	})

	select {
	case wp.tasks <- task:
	case <-wp.ctx.Done():
	}
}

// Results returns the channel results are delivered on.
func (wp *WorkerPool) Results() <-chan TaskResult {
	return wp.results
}

// Progress returns the channel progress updates are delivered on.
func (wp *WorkerPool) Progress() <-chan ProgressUpdate {
	return wp.progressChan
}

// Wait signals that no more tasks will be submitted, waits for workers to
// drain the queue, then closes the result and progress channels.
func (wp *WorkerPool) Wait() {
	close(wp.tasks)
	wp.wg.Wait()
	close(wp.results)
	close(wp.progressChan)
}

// Shutdown cancels in-flight work and waits for cleanup.
func (wp *WorkerPool) Shutdown() {
	wp.cancel()
	wp.Wait()
}
