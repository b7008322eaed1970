package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/asmolkov/taskhub/internal/entity"
	inerr "github.com/asmolkov/taskhub/internal/errors"
)

type Task struct {
	processor TaskProcessor
	validator Validator
}

type TaskProcessor interface {
	Create(ctx context.Context, task entity.Task) error
}

func NewTask(p TaskProcessor, v Validator) *Task {
	return &Task{
		processor: p,
		validator: v,
	}
}

// Create обрабатывает запрос на добавление задачи вручную, без импорта
// из каталога. Возвращает ответ с кодом 200, если задача добавлена,
// 409 - если задача с таким идентификатором каталога уже существует.
func (h *Task) Create(w http.ResponseWriter, r *http.Request) {
	req := TaskRequest{}
	if err := readJSONBodyAndValidate(r.Context(), &req, r, h.validator); err != nil {
		badRequest(w)

		return
	}

	err := h.processor.Create(r.Context(), entity.Task{
		ExtID:           req.ID,
		DifficultyGroup: req.DifficultyGroup,
		ShortDesc:       req.ShortDesc,
		ElapsedTime:     req.ElapsedTime,
	})
	if errors.Is(err, inerr.ErrTaskExists) {
		w.WriteHeader(http.StatusConflict)

		return
	} else if err != nil {
		serverError(w)

		return
	}

	w.WriteHeader(http.StatusOK)
}
