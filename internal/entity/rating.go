package entity

import "time"

// RatingEntry — агрегированный результат пользователя в рейтинге.
type RatingEntry struct {
	UserID        int64     `json:"user_id"`
	Login         string    `json:"login"`
	Solved        int       `json:"solved"`
	Score         float64   `json:"score"`
	FirstSolvedAt time.Time `json:"first_solved_at"`
}
