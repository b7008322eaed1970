package service

import (
	"context"

	"github.com/asmolkov/taskhub/internal/entity"
)

type Task struct {
	repository TaskRepository
}

type TaskRepository interface {
	Create(ctx context.Context, task entity.Task) error
}

func NewTask(r TaskRepository) *Task {
	return &Task{repository: r}
}

// Create добавляет новую задачу в TaskRepository.
func (s *Task) Create(ctx context.Context, task entity.Task) error {
	return s.repository.Create(ctx, task)
}
