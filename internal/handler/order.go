package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/asmolkov/taskhub/internal/entity"
	inerr "github.com/asmolkov/taskhub/internal/errors"
)

type Order struct {
	processor OrderProcessor
	validator Validator
	now       func() time.Time
}

type OrderProcessor interface {
	AssignOrGetActive(ctx context.Context, userID, taskID int64) (order *entity.TaskOrder, created bool, err error)
	Complete(ctx context.Context, orderID int64, now time.Time) (*entity.TaskOrder, error)
	GetUserOrders(ctx context.Context, userID int64) ([]entity.OrderDTO, error)
	GetActiveUnsolved(ctx context.Context, userID int64) (*entity.TaskOrder, error)
	Delete(ctx context.Context, orderID int64) error
}

func NewOrder(p OrderProcessor, v Validator) *Order {
	return &Order{
		processor: p,
		validator: v,
		now:       time.Now,
	}
}

// Assign обрабатывает запрос на назначение задачи пользователю. Возвращает
// ответ с кодом 202 и созданный заказ, если задача назначена, 200 и уже
// существующий заказ - если у пользователя есть нерешенный заказ, 404 - если
// пользователь или задача не найдены.
func (h *Order) Assign(w http.ResponseWriter, r *http.Request) {
	userID, err := int64URLParam(r, "userID")
	if err != nil {
		badRequest(w)

		return
	}

	req := AssignRequest{}
	if err := readJSONBodyAndValidate(r.Context(), &req, r, h.validator); err != nil {
		badRequest(w)

		return
	}

	order, created, err := h.processor.AssignOrGetActive(r.Context(), userID, req.TaskID)
	if errors.Is(err, inerr.ErrUserNotFound) || errors.Is(err, inerr.ErrTaskNotFound) {
		notFound(w)

		return
	} else if err != nil {
		serverError(w)

		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusAccepted
	}
	responseAsJSON(w, order, status)
}

// GetAll возвращает историю заказов пользователя. Если заказов нет,
// возвращает ответ с кодом 204.
func (h *Order) GetAll(w http.ResponseWriter, r *http.Request) {
	userID, err := int64URLParam(r, "userID")
	if err != nil {
		badRequest(w)

		return
	}

	orders, err := h.processor.GetUserOrders(r.Context(), userID)
	if err != nil {
		serverError(w)

		return
	}

	if len(orders) == 0 {
		w.WriteHeader(http.StatusNoContent)

		return
	}

	responseAsJSON(w, orders, http.StatusOK)
}

// GetActive возвращает нерешенный заказ пользователя. Если такого заказа
// нет, возвращает ответ с кодом 404.
func (h *Order) GetActive(w http.ResponseWriter, r *http.Request) {
	userID, err := int64URLParam(r, "userID")
	if err != nil {
		badRequest(w)

		return
	}

	order, err := h.processor.GetActiveUnsolved(r.Context(), userID)
	if errors.Is(err, inerr.ErrOrderNotFound) {
		notFound(w)

		return
	} else if err != nil {
		serverError(w)

		return
	}

	responseAsJSON(w, order, http.StatusOK)
}

// Complete обрабатывает запрос на завершение заказа. Возвращает ответ
// с кодом 200 и завершенный заказ в случае успеха, 404 - если заказ
// не найден, 409 - если заказ уже был решен.
func (h *Order) Complete(w http.ResponseWriter, r *http.Request) {
	orderID, err := int64URLParam(r, "orderID")
	if err != nil {
		badRequest(w)

		return
	}

	order, err := h.processor.Complete(r.Context(), orderID, h.now())
	if errors.Is(err, inerr.ErrOrderNotFound) {
		notFound(w)

		return
	} else if errors.Is(err, inerr.ErrOrderAlreadySolved) {
		w.WriteHeader(http.StatusConflict)

		return
	} else if err != nil {
		serverError(w)

		return
	}

	responseAsJSON(w, order, http.StatusOK)
}

// Delete обрабатывает запрос на удаление заказа. Возвращает ответ с кодом 204,
// в том числе для несуществующего заказа.
func (h *Order) Delete(w http.ResponseWriter, r *http.Request) {
	orderID, err := int64URLParam(r, "orderID")
	if err != nil {
		badRequest(w)

		return
	}

	if err := h.processor.Delete(r.Context(), orderID); err != nil {
		serverError(w)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
