// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Task is a named unit of work.
type Task struct {
	Name string
	Run  func(context.Context) error
}

// Run executes tasks with at most workerCount running concurrently and waits
// for all of them to finish. The first failure cancels the context handed to
// the remaining tasks; its error is returned after the pool drains.
func Run(ctx context.Context, workerCount int, tasks []Task) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if workerCount > len(tasks) {
		workerCount = len(tasks)
	}

	queue := make(chan Task, workerCount)
	errs := make(chan error, workerCount)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case task, ok := <-queue:
					if !ok {
						return
					}
					if err := task.Run(ctx); err != nil {
						select {
						case errs <- err:
						default:
						}
						cancel()
						return
					}
				}
			}
		}()
	}

	go func() {
		for _, task := range tasks {
			select {
			case <-ctx.Done():
				close(queue)
				return
			case queue <- task:
			}
		}
		close(queue)
	}()

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			return err
		}
	}

	return ctx.Err()
}
