package service

import (
	"context"
	"errors"
	"time"

	"github.com/asmolkov/taskhub/internal/entity"
	inerr "github.com/asmolkov/taskhub/internal/errors"
)

type Order struct {
	repository OrderRepository
}

type OrderRepository interface {
	Create(ctx context.Context, userID, taskID int64) (*entity.TaskOrder, error)
	Complete(ctx context.Context, id int64, now time.Time) (*entity.TaskOrder, error)
	FindActiveByUser(ctx context.Context, userID int64) (*entity.TaskOrder, error)
	FindAllByUserID(ctx context.Context, userID int64) ([]entity.OrderDTO, error)
	Delete(ctx context.Context, id int64) error
}

func NewOrder(r OrderRepository) *Order {
	return &Order{repository: r}
}

// AssignOrGetActive назначает задачу пользователю. Если у пользователя уже есть
// нерешенный заказ, возвращает его вместо создания нового, поэтому повторный
// вызов без завершения заказа возвращает тот же заказ. Created в результате
// показывает, был ли заказ создан этим вызовом.
func (s *Order) AssignOrGetActive(ctx context.Context, userID, taskID int64) (*entity.TaskOrder, bool, error) {
	order, err := s.repository.FindActiveByUser(ctx, userID)
	if err == nil {
		return order, false, nil
	}
	if !errors.Is(err, inerr.ErrOrderNotFound) {
		return nil, false, err
	}

	order, err = s.repository.Create(ctx, userID, taskID)
	if err != nil {
		return nil, false, err
	}

	return order, true, nil
}

// Complete завершает заказ, вычисляя время решения от момента создания до now.
// Из конкурентных вызовов для одного заказа успешным будет ровно один,
// остальные получат ошибку errors.ErrOrderAlreadySolved.
func (s *Order) Complete(ctx context.Context, orderID int64, now time.Time) (*entity.TaskOrder, error) {
	return s.repository.Complete(ctx, orderID, now)
}

// GetUserOrders возвращает историю заказов пользователя.
func (s *Order) GetUserOrders(ctx context.Context, userID int64) ([]entity.OrderDTO, error) {
	return s.repository.FindAllByUserID(ctx, userID)
}

// GetActiveUnsolved возвращает нерешенный заказ пользователя.
func (s *Order) GetActiveUnsolved(ctx context.Context, userID int64) (*entity.TaskOrder, error) {
	return s.repository.FindActiveByUser(ctx, userID)
}

// Delete удаляет заказ. Удаление несуществующего заказа не является ошибкой.
func (s *Order) Delete(ctx context.Context, orderID int64) error {
	return s.repository.Delete(ctx, orderID)
}
