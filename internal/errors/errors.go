package errors

import "errors"

var (
	ErrUserExists         = errors.New("user exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrTaskExists         = errors.New("task exists")
	ErrTaskNotFound       = errors.New("task not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderAlreadySolved = errors.New("order already solved")
)
