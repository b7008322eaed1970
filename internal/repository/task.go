package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/asmolkov/taskhub/internal/entity"
	inerr "github.com/asmolkov/taskhub/internal/errors"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

type Task struct {
	db *sql.DB
}

func NewTask(db *sql.DB) *Task {
	return &Task{db: db}
}

// Create сохраняет импортированную из каталога задачу. Если задача с
// переданным ext_id уже была импортирована, возвращает ошибку
// errors.ErrTaskExists.
func (r *Task) Create(ctx context.Context, task entity.Task) error {
	_, err := r.db.ExecContext(
		ctx,
		"INSERT INTO tasks (ext_id, difficulty_group, short_desc, elapsed_time) VALUES ($1, $2, $3, $4)",
		task.ExtID,
		task.DifficultyGroup,
		task.ShortDesc,
		task.ElapsedTime,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return inerr.ErrTaskExists
	}

	return err
}

// LastExtID возвращает наибольший идентификатор каталога среди
// импортированных задач. Если задач нет, возвращает 0.
func (r *Task) LastExtID(ctx context.Context) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, "SELECT coalesce(max(ext_id), 0) FROM tasks").Scan(&id)

	return id, err
}
