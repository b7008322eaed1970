package handler

import (
	"context"
	"errors"
	"net/http"

	inerr "github.com/asmolkov/taskhub/internal/errors"
)

type Signup struct {
	signuper  Signuper
	validator Validator
}

type Signuper interface {
	Register(ctx context.Context, login, password string) (id int64, err error)
}

func NewSignup(s Signuper, v Validator) *Signup {
	return &Signup{
		signuper:  s,
		validator: v,
	}
}

// Register регистрирует пользователя по паре логин/пароль. В случае успешного
// создания пользователя возвращает ответ с кодом 200 и id пользователя. Если
// логин занят, возвращает ответ с кодом 409.
func (h *Signup) Register(w http.ResponseWriter, r *http.Request) {
	req := SignupRequest{}
	if err := readJSONBodyAndValidate(r.Context(), &req, r, h.validator); err != nil {
		badRequest(w)

		return
	}

	id, err := h.signuper.Register(r.Context(), req.Login, req.Password)
	if errors.Is(err, inerr.ErrUserExists) {
		w.WriteHeader(http.StatusConflict)

		return
	} else if err != nil {
		serverError(w)

		return
	}

	resp := struct {
		ID int64 `json:"id"`
	}{
		ID: id,
	}
	responseAsJSON(w, resp, http.StatusOK)
}
