package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
)

type ValidatorMock struct {
	mock.Mock
}

func (m *ValidatorMock) Struct(_ context.Context, s any) error {
	args := m.Called(s)

	return args.Error(0)
}

func (m *ValidatorMock) Var(_ context.Context, field any, tag string) error {
	args := m.Called(field, tag)

	return args.Error(0)
}

func sendTestRequest(method string, params map[string]string, body io.Reader, handler http.HandlerFunc) *http.Response {
	request := httptest.NewRequest(method, "/", body)
	rctx := chi.NewRouteContext()
	for name, value := range params {
		rctx.URLParams.Add(name, value)
	}
	request = request.WithContext(context.WithValue(request.Context(), chi.RouteCtxKey, rctx))
	w := httptest.NewRecorder()
	handler(w, request)

	return w.Result()
}
