package service

import (
	"context"
	"sort"

	"github.com/asmolkov/taskhub/internal/entity"
)

type Rating struct {
	repository RatingRepository
	weights    Weights
}

type RatingRepository interface {
	FindSolved(ctx context.Context) ([]entity.SolvedOrder, error)
}

// Weights задает вес группы сложности в рейтинге. Задачи с неизвестной
// группой сложности в рейтинге не учитываются.
type Weights map[string]float64

func DefaultWeights() Weights {
	return Weights{
		entity.DifficultyElementary:   1,
		entity.DifficultyIntermediate: 2,
		entity.DifficultyExpert:       3,
	}
}

func NewRating(r RatingRepository, w Weights) *Rating {
	return &Rating{
		repository: r,
		weights:    w,
	}
}

// TopUsers возвращает не более n лучших пользователей по сумме
// weight(difficultyGroup) / max(1, execTime) решенных заказов: чем сложнее
// задача и чем быстрее она решена, тем выше вклад в рейтинг. Порядок
// детерминирован: при равном рейтинге выше пользователь с большим числом
// решенных задач, затем с более ранним первым решением, затем с меньшим id.
// Если решенных заказов нет, возвращает пустой список.
func (s *Rating) TopUsers(ctx context.Context, n int) ([]entity.RatingEntry, error) {
	if n <= 0 {
		return []entity.RatingEntry{}, nil
	}

	solved, err := s.repository.FindSolved(ctx)
	if err != nil {
		return nil, err
	}

	byUser := map[int64]*entity.RatingEntry{}
	for _, o := range solved {
		w, ok := s.weights[o.DifficultyGroup]
		if !ok {
			continue
		}

		e, ok := byUser[o.UserID]
		if !ok {
			e = &entity.RatingEntry{
				UserID:        o.UserID,
				Login:         o.Login,
				FirstSolvedAt: o.SolvedAt,
			}
			byUser[o.UserID] = e
		}

		execTime := o.ExecTime
		if execTime < 1 {
			execTime = 1
		}

		e.Solved++
		e.Score += w / float64(execTime)
		if o.SolvedAt.Before(e.FirstSolvedAt) {
			e.FirstSolvedAt = o.SolvedAt
		}
	}

	entries := make([]entity.RatingEntry, 0, len(byUser))
	for _, e := range byUser {
		entries = append(entries, *e)
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Solved != b.Solved {
			return a.Solved > b.Solved
		}
		if !a.FirstSolvedAt.Equal(b.FirstSolvedAt) {
			return a.FirstSolvedAt.Before(b.FirstSolvedAt)
		}

		return a.UserID < b.UserID
	})

	if len(entries) > n {
		entries = entries[:n]
	}

	return entries, nil
}
