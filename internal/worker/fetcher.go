package worker

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/asmolkov/taskhub/internal/entity"
)

// TaskFetcher периодически запрашивает у каталога задачи, появившиеся после
// последней импортированной, и создает задания на их сохранение.
type TaskFetcher struct {
	repository FetcherRepository
	client     CatalogClient
	tasks      chan<- entity.Task
	wg         *sync.WaitGroup
	interval   time.Duration
}

type FetcherRepository interface {
	LastExtID(ctx context.Context) (int64, error)
}

type CatalogClient interface {
	GetTasks(ctx context.Context, after int64) ([]entity.Task, error)
}

func NewTaskFetcher(
	r FetcherRepository,
	c CatalogClient,
	tasks chan<- entity.Task,
	wg *sync.WaitGroup,
	interval time.Duration,
) *TaskFetcher {
	return &TaskFetcher{
		repository: r,
		client:     c,
		tasks:      tasks,
		wg:         wg,
		interval:   interval,
	}
}

func (f *TaskFetcher) Do(ctx context.Context) {
	f.wg.Add(1)

	go f.worker(ctx)
}

func (f *TaskFetcher) worker(ctx context.Context) {
	defer f.wg.Done()

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			f.fetch(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (f *TaskFetcher) fetch(ctx context.Context) {
	after, err := f.repository.LastExtID(ctx)
	if err != nil {
		log.Printf("ошибка получения идентификатора последней задачи: %v", err)

		return
	}

	tasks, err := f.client.GetTasks(ctx, after)
	if err != nil {
		log.Printf("ошибка получения задач из каталога: %v", err)

		return
	}

	for _, t := range tasks {
		select {
		case f.tasks <- t:
		case <-ctx.Done():
			return
		}
	}
}
