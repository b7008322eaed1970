package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/asmolkov/taskhub/internal/entity"
	inerr "github.com/asmolkov/taskhub/internal/errors"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

type Order struct {
	db *sql.DB
}

func NewOrder(db *sql.DB) *Order {
	return &Order{db: db}
}

const (
	userFKConstraint = "task_orders_user_id_fkey"
	taskFKConstraint = "task_orders_task_id_fkey"
)

// Create добавляет новый заказ в статусе entity.OrderStatusNotSolved и увеличивает
// популярность задачи. У пользователя может быть только один нерешенный заказ:
// если он уже существует, Create возвращает его вместо создания нового. Если
// пользователь или задача не существуют, возвращает ошибки errors.ErrUserNotFound
// и errors.ErrTaskNotFound соответственно.
func (r *Order) Create(ctx context.Context, userID, taskID int64) (*entity.TaskOrder, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, err
	}

	order := &entity.TaskOrder{
		UserID: userID,
		TaskID: taskID,
		Status: entity.OrderStatusNotSolved,
	}
	err = tx.QueryRowContext(
		ctx,
		"INSERT INTO task_orders (user_id, task_id) VALUES ($1, $2) RETURNING id, reg_date",
		userID,
		taskID,
	).Scan(&order.ID, &order.RegDate)
	if err != nil {
		_ = tx.Rollback()

		var pgErr *pgconn.PgError
		if !errors.As(err, &pgErr) {
			return nil, err
		}

		switch {
		case pgErr.Code == pgerrcode.UniqueViolation:
			return r.FindActiveByUser(ctx, userID)
		case pgErr.Code == pgerrcode.ForeignKeyViolation && pgErr.ConstraintName == userFKConstraint:
			return nil, inerr.ErrUserNotFound
		case pgErr.Code == pgerrcode.ForeignKeyViolation && pgErr.ConstraintName == taskFKConstraint:
			return nil, inerr.ErrTaskNotFound
		}

		return nil, err
	}

	if _, err = tx.ExecContext(ctx, "UPDATE tasks SET popularity = popularity + 1 WHERE id = $1", taskID); err != nil {
		_ = tx.Rollback()

		return nil, err
	}

	if err = tx.Commit(); err != nil {
		_ = tx.Rollback()

		return nil, err
	}

	return order, nil
}

// Complete переводит заказ в статус entity.OrderStatusSolved и фиксирует время
// решения. Обновление выполняется одним условным UPDATE, поэтому из конкурентных
// вызовов для одного заказа успешным будет ровно один. Если заказ уже решен,
// возвращает ошибку errors.ErrOrderAlreadySolved, если заказ не существует —
// errors.ErrOrderNotFound.
func (r *Order) Complete(ctx context.Context, id int64, now time.Time) (*entity.TaskOrder, error) {
	order := &entity.TaskOrder{}
	err := r.db.QueryRowContext(ctx, `
UPDATE task_orders
SET status    = 'SOLVED',
    exec_time = greatest(0, extract(epoch FROM $2::timestamptz - reg_date)::bigint),
    solved_at = $2
WHERE id = $1
  AND status = 'NOT_SOLVED'
RETURNING id, user_id, task_id, reg_date, exec_time, status
	`, id, now).Scan(&order.ID, &order.UserID, &order.TaskID, &order.RegDate, &order.ExecTime, &order.Status)
	if errors.Is(err, sql.ErrNoRows) {
		exists := false
		if err := r.db.QueryRowContext(ctx, "SELECT exists(SELECT 1 FROM task_orders WHERE id = $1)", id).Scan(&exists); err != nil {
			return nil, err
		}

		if exists {
			return nil, inerr.ErrOrderAlreadySolved
		}

		return nil, inerr.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	return order, nil
}

// FindActiveByUser возвращает нерешенный заказ пользователя. Если такого
// заказа нет, возвращает ошибку errors.ErrOrderNotFound.
func (r *Order) FindActiveByUser(ctx context.Context, userID int64) (*entity.TaskOrder, error) {
	order := &entity.TaskOrder{}
	err := r.db.QueryRowContext(ctx, `
SELECT id, user_id, task_id, reg_date, exec_time, status
FROM task_orders
WHERE user_id = $1
  AND status = 'NOT_SOLVED'
LIMIT 1
	`, userID).Scan(&order.ID, &order.UserID, &order.TaskID, &order.RegDate, &order.ExecTime, &order.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, inerr.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	return order, nil
}

// FindAllByUserID возвращает историю заказов пользователя вместе с данными
// пользователя и задачи. Данные отсортированы по времени создания заказа
// от самых старых к самым новым.
func (r *Order) FindAllByUserID(ctx context.Context, userID int64) (orders []entity.OrderDTO, err error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT u.id, u.login, t.difficulty_group, t.short_desc, o.reg_date, o.status, t.reg_date, t.popularity, t.elapsed_time, o.exec_time, o.id
FROM task_orders o
         JOIN users u ON u.id = o.user_id
         JOIN tasks t ON t.id = o.task_id
WHERE o.user_id = $1
ORDER BY o.reg_date
	`, userID)
	if err != nil {
		return nil, err
	}

	defer func(rows *sql.Rows) {
		err = rows.Close()
	}(rows)

	for rows.Next() {
		order := entity.OrderDTO{}
		err = rows.Scan(
			&order.UserID,
			&order.Login,
			&order.DifficultyGroup,
			&order.ShortDesc,
			&order.RegDate,
			&order.Status,
			&order.TaskRegDate,
			&order.Popularity,
			&order.ElapsedTime,
			&order.ExecTime,
			&order.OrderID,
		)
		if err != nil {
			continue
		}

		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, err
}

// Delete удаляет заказ. Удаление несуществующего заказа не является ошибкой.
func (r *Order) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM task_orders WHERE id = $1", id)

	return err
}

// FindSolved возвращает все решенные заказы вместе с логином пользователя
// и группой сложности задачи для расчета рейтинга.
func (r *Order) FindSolved(ctx context.Context) (orders []entity.SolvedOrder, err error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT o.user_id, u.login, t.difficulty_group, o.exec_time, o.solved_at
FROM task_orders o
         JOIN users u ON u.id = o.user_id
         JOIN tasks t ON t.id = o.task_id
WHERE o.status = 'SOLVED'
	`)
	if err != nil {
		return nil, err
	}

	defer func(rows *sql.Rows) {
		err = rows.Close()
	}(rows)

	for rows.Next() {
		order := entity.SolvedOrder{}
		err = rows.Scan(&order.UserID, &order.Login, &order.DifficultyGroup, &order.ExecTime, &order.SolvedAt)
		if err != nil {
			continue
		}

		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, err
}
