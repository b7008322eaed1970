package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type SignupRequest struct {
	Login    string `json:"login" validate:"required,alphanum,min=3,max=20"`
	Password string `json:"password" validate:"required,min=8,max=32"`
}

type AssignRequest struct {
	TaskID int64 `json:"task_id" validate:"required,min=1"`
}

type TaskRequest struct {
	ID              int64  `json:"id" validate:"required,min=1"`
	DifficultyGroup string `json:"difficulty_group" validate:"required,difficulty"`
	ShortDesc       string `json:"short_desc" validate:"required,max=255"`
	ElapsedTime     int64  `json:"elapsed_time" validate:"min=0"`
}

type Validator interface {
	Struct(ctx context.Context, s any) error
	Var(ctx context.Context, field any, tag string) error
}

func readJSONBody(v any, r *http.Request) error {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	return json.Unmarshal(b, v)
}

func readJSONBodyAndValidate(ctx context.Context, v any, r *http.Request, validator Validator) error {
	if err := readJSONBody(v, r); err != nil {
		return err
	}

	return validator.Struct(ctx, v)
}

func int64URLParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
