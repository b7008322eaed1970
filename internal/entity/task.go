package entity

import "time"

// Task — задача из внешнего каталога. ExtID — идентификатор задачи
// в каталоге, по нему импорт выполняется идемпотентно. Popularity
// увеличивается при каждом назначении задачи.
const (
	DifficultyElementary   = "ELEMENTARY"
	DifficultyIntermediate = "INTERMEDIATE"
	DifficultyExpert       = "EXPERT"
)

type Task struct {
	ID              int64     `json:"id"`
	ExtID           int64     `json:"ext_id"`
	DifficultyGroup string    `json:"difficulty_group"`
	ShortDesc       string    `json:"short_desc"`
	Popularity      int64     `json:"popularity"`
	ElapsedTime     int64     `json:"elapsed_time"`
	RegDate         time.Time `json:"reg_date"`
}
