package migrations

import (
	"database/sql"

	"github.com/lopezator/migrator"
)

func Up(db *sql.DB) error {
	m, err := migrator.New(
		migrator.Migrations(
			&migrator.MigrationNoTx{
				Name: "Create users table",
				Func: createUsersTable,
			},
			&migrator.MigrationNoTx{
				Name: "Create tasks table",
				Func: createTasksTable,
			},
			&migrator.MigrationNoTx{
				Name: "Create task_orders table",
				Func: createTaskOrdersTable,
			},
		),
	)
	if err != nil {
		return err
	}

	return m.Migrate(db)
}

func createUsersTable(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE users
(
    id            bigint GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    login         varchar(20)  NOT NULL UNIQUE,
    password_hash varchar(100) NOT NULL,
    reg_date      timestamptz  NOT NULL DEFAULT now()
)
	`)

	return err
}

func createTasksTable(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE tasks
(
    id               bigint GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    ext_id           bigint       NOT NULL UNIQUE,
    difficulty_group varchar(20)  NOT NULL,
    short_desc       varchar(255) NOT NULL,
    popularity       bigint       NOT NULL DEFAULT 0,
    elapsed_time     bigint       NOT NULL DEFAULT 0,
    reg_date         timestamptz  NOT NULL DEFAULT now()
)
	`)

	return err
}

func createTaskOrdersTable(db *sql.DB) error {
	if _, err := db.Exec("CREATE TYPE order_status AS ENUM ('NOT_SOLVED', 'SOLVED')"); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE task_orders
(
    id        bigint GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    user_id   bigint       NOT NULL REFERENCES users (id),
    task_id   bigint       NOT NULL REFERENCES tasks (id),
    reg_date  timestamptz  NOT NULL DEFAULT now(),
    exec_time bigint       NOT NULL DEFAULT 0,
    CHECK (exec_time >= 0),
    status    order_status NOT NULL DEFAULT 'NOT_SOLVED',
    solved_at timestamptz
)
	`); err != nil {
		return err
	}

	// У пользователя может быть не более одного нерешенного заказа.
	_, err := db.Exec(`
CREATE UNIQUE INDEX task_orders_active_user_idx
    ON task_orders (user_id)
    WHERE status = 'NOT_SOLVED'
	`)

	return err
}
