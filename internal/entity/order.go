package entity

import "time"

// TaskOrder — назначение задачи пользователю. Заказ создается в статусе
// entity.OrderStatusNotSolved и ровно один раз переводится в
// entity.OrderStatusSolved с фиксацией времени решения.
type TaskOrder struct {
	ID       int64       `json:"id"`
	UserID   int64       `json:"user_id"`
	TaskID   int64       `json:"task_id"`
	RegDate  time.Time   `json:"reg_date"`
	ExecTime int64       `json:"exec_time"`
	Status   OrderStatus `json:"status"`
}

// OrderDTO — денормализованная строка истории заказов пользователя.
// Содержит все данные для отображения строки истории без дополнительных
// запросов.
type OrderDTO struct {
	UserID          int64       `json:"user_id"`
	Login           string      `json:"login"`
	DifficultyGroup string      `json:"difficulty_group"`
	ShortDesc       string      `json:"short_desc"`
	RegDate         time.Time   `json:"reg_date"`
	Status          OrderStatus `json:"status"`
	TaskRegDate     time.Time   `json:"task_reg_date"`
	Popularity      int64       `json:"popularity"`
	ElapsedTime     int64       `json:"elapsed_time"`
	ExecTime        int64       `json:"exec_time"`
	OrderID         int64       `json:"order_id"`
}

// SolvedOrder — строка решенного заказа для расчета рейтинга.
type SolvedOrder struct {
	UserID          int64
	Login           string
	DifficultyGroup string
	ExecTime        int64
	SolvedAt        time.Time
}

type OrderStatus string

const (
	OrderStatusNotSolved OrderStatus = "NOT_SOLVED"
	OrderStatusSolved    OrderStatus = "SOLVED"
)
