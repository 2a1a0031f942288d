package extractor

import (
	"fmt"
	"testing"
	"time"
)

func TestWorkerPoolProcessesAllTasks(t *testing.T) {
	pool := NewWorkerPool(2, DefaultExtractionOptions())
	pool.Start()

	// Missing files exercise the full task flow without needing a
	// Tesseract installation.
	const numTasks = 5

	for i := 0; i < numTasks; i++ {
		pool.Submit(Task{
			ID:   fmt.Sprintf("task-%d", i),
			Path: fmt.Sprintf("/nonexistent/img-%d.png", i),
		})
	}

	go pool.Wait()

	received := 0

	for taskResult := range pool.Results() {
		received++

		if taskResult.Result.OK() {
			t.Errorf("task %s: expected failure for missing file", taskResult.Task.ID)
		} else if taskResult.Result.Err.Kind != ErrorFileNotFound {
			t.Errorf("task %s: error kind = %q, want %q",
				taskResult.Task.ID, taskResult.Result.Err.Kind, ErrorFileNotFound)
		}
	}

	if received != numTasks {
		t.Errorf("received %d results, want %d", received, numTasks)
	}
}

func TestWorkerPoolReportsProgress(t *testing.T) {
	pool := NewWorkerPool(1, DefaultExtractionOptions())
	pool.Start()

	pool.Submit(Task{ID: "task-0", Path: "/nonexistent/img.png"})

	go pool.Wait()

	sawFailed := false

	done := make(chan struct{})
	go func() {
		defer close(done)

		for update := range pool.Progress() {
			if update.Status == TaskStatusFailed {
				sawFailed = true
			}
		}
	}()

	for range pool.Results() {
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for progress channel to close")
	}

	if !sawFailed {
		t.Error("expected a failed progress update for the missing file")
	}
}

func TestWorkerPoolDefaultsWorkerCount(t *testing.T) {
	pool := NewWorkerPool(0, DefaultExtractionOptions())

	if pool.numWorkers <= 0 {
		t.Errorf("numWorkers = %d, want positive default", pool.numWorkers)
	}

	pool.Start()
	pool.Wait()
}
