package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/asmolkov/taskhub/internal/entity"
)

type Rating struct {
	processor RatingProcessor
}

type RatingProcessor interface {
	TopUsers(ctx context.Context, n int) ([]entity.RatingEntry, error)
}

const defaultTopUsersCount = 10

func NewRating(p RatingProcessor) *Rating {
	return &Rating{processor: p}
}

// Top возвращает рейтинг лучших пользователей. Количество записей задается
// параметром count, по умолчанию 10. Если решенных заказов нет, возвращает
// ответ с кодом 204.
func (h *Rating) Top(w http.ResponseWriter, r *http.Request) {
	count := defaultTopUsersCount
	if c := r.URL.Query().Get("count"); c != "" {
		parsed, err := strconv.Atoi(c)
		if err != nil || parsed < 1 {
			badRequest(w)

			return
		}

		count = parsed
	}

	entries, err := h.processor.TopUsers(r.Context(), count)
	if err != nil {
		serverError(w)

		return
	}

	if len(entries) == 0 {
		w.WriteHeader(http.StatusNoContent)

		return
	}

	responseAsJSON(w, entries, http.StatusOK)
}
