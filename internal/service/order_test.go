package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/asmolkov/taskhub/internal/entity"
	inerr "github.com/asmolkov/taskhub/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type OrderRepositoryMock struct {
	mock.Mock
}

func (m *OrderRepositoryMock) Create(_ context.Context, userID, taskID int64) (*entity.TaskOrder, error) {
	args := m.Called(userID, taskID)

	return args.Get(0).(*entity.TaskOrder), args.Error(1)
}

func (m *OrderRepositoryMock) Complete(_ context.Context, id int64, now time.Time) (*entity.TaskOrder, error) {
	args := m.Called(id, now)

	return args.Get(0).(*entity.TaskOrder), args.Error(1)
}

func (m *OrderRepositoryMock) FindActiveByUser(_ context.Context, userID int64) (*entity.TaskOrder, error) {
	args := m.Called(userID)

	return args.Get(0).(*entity.TaskOrder), args.Error(1)
}

func (m *OrderRepositoryMock) FindAllByUserID(_ context.Context, userID int64) ([]entity.OrderDTO, error) {
	args := m.Called(userID)

	return args.Get(0).([]entity.OrderDTO), args.Error(1)
}

func (m *OrderRepositoryMock) Delete(_ context.Context, id int64) error {
	args := m.Called(id)

	return args.Error(0)
}

func TestOrder_AssignOrGetActive(t *testing.T) {
	var (
		ctx          = context.Background()
		userID int64 = 1
		taskID int64 = 10
		active       = &entity.TaskOrder{
			ID:     99,
			UserID: userID,
			TaskID: 5,
			Status: entity.OrderStatusNotSolved,
		}
		created = &entity.TaskOrder{
			ID:     100,
			UserID: userID,
			TaskID: taskID,
			Status: entity.OrderStatusNotSolved,
		}
		repositoryWithActive = &OrderRepositoryMock{}
		repositoryEmpty      = &OrderRepositoryMock{}
	)

	repositoryWithActive.
		On("FindActiveByUser", userID).
		Return(active, nil).
		Twice()
	repositoryEmpty.
		On("FindActiveByUser", userID).
		Return((*entity.TaskOrder)(nil), inerr.ErrOrderNotFound).
		Once()
	repositoryEmpty.
		On("Create", userID, taskID).
		Return(created, nil).
		Once()

	service := Order{repository: repositoryWithActive}
	order, isNew, err := service.AssignOrGetActive(ctx, userID, taskID)
	assert.NoError(t, err, "у пользователя уже есть нерешенный заказ")
	assert.False(t, isNew, "у пользователя уже есть нерешенный заказ")
	assert.Equal(t, active, order, "у пользователя уже есть нерешенный заказ")

	sameOrder, _, err := service.AssignOrGetActive(ctx, userID, taskID)
	assert.NoError(t, err, "повторное назначение возвращает тот же заказ")
	assert.Equal(t, order, sameOrder, "повторное назначение возвращает тот же заказ")

	service = Order{repository: repositoryEmpty}
	order, isNew, err = service.AssignOrGetActive(ctx, userID, taskID)
	assert.NoError(t, err, "создание первого заказа пользователя")
	assert.True(t, isNew, "создание первого заказа пользователя")
	assert.Equal(t, created, order, "создание первого заказа пользователя")

	repositoryWithActive.AssertExpectations(t)
	repositoryEmpty.AssertExpectations(t)
}

func TestOrder_AssignOrGetActiveErrors(t *testing.T) {
	var (
		ctx                   = context.Background()
		userID          int64 = 1
		taskID          int64 = 10
		unknownTaskID   int64 = 11
		repositoryError       = &OrderRepositoryMock{}
		repositoryTask        = &OrderRepositoryMock{}
	)

	repositoryError.
		On("FindActiveByUser", userID).
		Return((*entity.TaskOrder)(nil), errors.New("")).
		Once()
	repositoryTask.
		On("FindActiveByUser", userID).
		Return((*entity.TaskOrder)(nil), inerr.ErrOrderNotFound).
		Once()
	repositoryTask.
		On("Create", userID, unknownTaskID).
		Return((*entity.TaskOrder)(nil), inerr.ErrTaskNotFound).
		Once()

	service := Order{repository: repositoryError}
	_, _, err := service.AssignOrGetActive(ctx, userID, taskID)
	assert.Error(t, err, "ошибка при поиске нерешенного заказа")

	service = Order{repository: repositoryTask}
	_, _, err = service.AssignOrGetActive(ctx, userID, unknownTaskID)
	assert.ErrorIs(t, err, inerr.ErrTaskNotFound, "назначение несуществующей задачи")

	repositoryError.AssertExpectations(t)
	repositoryTask.AssertExpectations(t)
}

func TestOrder_Complete(t *testing.T) {
	var (
		ctx                  = context.Background()
		orderID        int64 = 100
		solvedOrderID  int64 = 101
		now                  = time.Now()
		solved               = &entity.TaskOrder{
			ID:       orderID,
			Status:   entity.OrderStatusSolved,
			ExecTime: 42,
		}
		repository = &OrderRepositoryMock{}
	)

	repository.
		On("Complete", orderID, now).
		Return(solved, nil).
		Once()
	repository.
		On("Complete", solvedOrderID, now).
		Return((*entity.TaskOrder)(nil), inerr.ErrOrderAlreadySolved).
		Once()

	service := Order{repository: repository}
	order, err := service.Complete(ctx, orderID, now)
	assert.NoError(t, err, "успешное завершение заказа")
	assert.Equal(t, solved, order, "успешное завершение заказа")

	_, err = service.Complete(ctx, solvedOrderID, now)
	assert.ErrorIs(t, err, inerr.ErrOrderAlreadySolved, "попытка завершить решенный заказ")

	repository.AssertExpectations(t)
}

func TestOrder_GetUserOrders(t *testing.T) {
	var (
		ctx                = context.Background()
		userID       int64 = 1
		errorUserID  int64 = 2
		orders             = []entity.OrderDTO{
			{
				OrderID:         100,
				Login:           "developer",
				DifficultyGroup: entity.DifficultyElementary,
				Status:          entity.OrderStatusSolved,
			},
			{
				OrderID:         101,
				Login:           "developer",
				DifficultyGroup: entity.DifficultyExpert,
				Status:          entity.OrderStatusNotSolved,
			},
		}
		repository = &OrderRepositoryMock{}
	)

	repository.
		On("FindAllByUserID", userID).
		Return(orders, nil).
		Once()
	repository.
		On("FindAllByUserID", errorUserID).
		Return([]entity.OrderDTO{}, errors.New("")).
		Once()

	service := Order{repository: repository}
	resOrders, _ := service.GetUserOrders(ctx, userID)
	assert.Equal(t, orders, resOrders, "успешное получение истории заказов")

	_, err := service.GetUserOrders(ctx, errorUserID)
	assert.Error(t, err, "ошибка при получении истории заказов")

	repository.AssertExpectations(t)
}

func TestOrder_Delete(t *testing.T) {
	var (
		ctx           = context.Background()
		orderID int64 = 100
		repository    = &OrderRepositoryMock{}
	)

	repository.
		On("Delete", orderID).
		Return(nil).
		Twice()

	service := Order{repository: repository}
	assert.NoError(t, service.Delete(ctx, orderID), "успешное удаление заказа")
	assert.NoError(t, service.Delete(ctx, orderID), "повторное удаление заказа не является ошибкой")

	repository.AssertExpectations(t)
}
