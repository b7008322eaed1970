package repository

import (
	"context"
	"database/sql"
	"errors"

	inerr "github.com/asmolkov/taskhub/internal/errors"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

type User struct {
	db *sql.DB
}

func NewUser(db *sql.DB) *User {
	return &User{db: db}
}

// Create создает нового пользователя и возвращает его id. Если пользователь с
// переданным login существует, возвращает ошибку errors.ErrUserExists.
func (r *User) Create(ctx context.Context, login, passwordHash string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(
		ctx,
		"INSERT INTO users (login, password_hash) VALUES ($1, $2) RETURNING id",
		login,
		passwordHash,
	).Scan(&id)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return 0, inerr.ErrUserExists
	}

	return id, err
}
