package worker

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/asmolkov/taskhub/internal/entity"
	inerr "github.com/asmolkov/taskhub/internal/errors"
)

// TaskSaver получает задания на сохранение задач и сохраняет их.
// Для выполнения сохранений создается TaskSaver.workersCount воркеров.
// Повторный импорт уже сохраненной задачи не является ошибкой.
type TaskSaver struct {
	repository   SaverRepository
	tasks        <-chan entity.Task
	wg           *sync.WaitGroup
	workersCount int
}

type SaverRepository interface {
	Create(ctx context.Context, task entity.Task) error
}

func NewTaskSaver(r SaverRepository, tasks <-chan entity.Task, wg *sync.WaitGroup, w int) *TaskSaver {
	return &TaskSaver{
		repository:   r,
		tasks:        tasks,
		wg:           wg,
		workersCount: w,
	}
}

func (s *TaskSaver) Do(ctx context.Context) {
	for i := 0; i < s.workersCount; i++ {
		s.wg.Add(1)

		go s.worker(ctx)
	}
}

func (s *TaskSaver) worker(ctx context.Context) {
	defer s.wg.Done()

	for {
		select {
		case t, ok := <-s.tasks:
			if !ok {
				return
			}

			if err := s.repository.Create(ctx, t); err != nil && !errors.Is(err, inerr.ErrTaskExists) {
				log.Printf("ошибка сохранения задачи %d: %v", t.ExtID, err)
			}
		case <-ctx.Done():
			return
		}
	}
}
