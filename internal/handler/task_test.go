package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/asmolkov/taskhub/internal/entity"
	inerr "github.com/asmolkov/taskhub/internal/errors"
	"github.com/asmolkov/taskhub/internal/validator"
	v10validator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type TaskProcessorMock struct {
	mock.Mock
}

func (m *TaskProcessorMock) Create(_ context.Context, task entity.Task) error {
	args := m.Called(task)

	return args.Error(0)
}

func TestTask_Create(t *testing.T) {
	var (
		task = entity.Task{
			ExtID:           42,
			DifficultyGroup: entity.DifficultyIntermediate,
			ShortDesc:       "Reverse a linked list",
			ElapsedTime:     120,
		}
		req = &TaskRequest{
			ID:              task.ExtID,
			DifficultyGroup: task.DifficultyGroup,
			ShortDesc:       task.ShortDesc,
			ElapsedTime:     task.ElapsedTime,
		}
		body               = `{"id": 42, "difficulty_group": "INTERMEDIATE", "short_desc": "Reverse a linked list", "elapsed_time": 120}`
		processorOK        = &TaskProcessorMock{}
		processorDuplicate = &TaskProcessorMock{}
		processorError     = &TaskProcessorMock{}
		val                = &ValidatorMock{}
	)

	val.On("Struct", req).Return(nil).Times(3)
	processorOK.On("Create", task).Return(nil).Once()
	processorDuplicate.On("Create", task).Return(inerr.ErrTaskExists).Once()
	processorError.On("Create", task).Return(errors.New("")).Once()

	tests := []struct {
		name           string
		processor      TaskProcessor
		wantStatusCode int
	}{
		{
			name:           "успешное добавление задачи",
			processor:      processorOK,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "задача уже существует",
			processor:      processorDuplicate,
			wantStatusCode: http.StatusConflict,
		},
		{
			name:           "ошибка при добавлении задачи",
			processor:      processorError,
			wantStatusCode: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := Task{
				processor: tt.processor,
				validator: val,
			}
			result := sendTestRequest(
				http.MethodPost,
				nil,
				bytes.NewBufferString(body),
				handler.Create,
			)
			assert.Equal(t, tt.wantStatusCode, result.StatusCode)
			require.NoError(t, result.Body.Close())
		})
	}
	val.AssertExpectations(t)
	processorOK.AssertExpectations(t)
	processorDuplicate.AssertExpectations(t)
	processorError.AssertExpectations(t)
}

func TestTask_CreateValidationErrors(t *testing.T) {
	var (
		processor = &TaskProcessorMock{}
		v10       = v10validator.New()
	)

	require.NoError(t, v10.RegisterValidation("difficulty", validator.Difficulty))
	handler := Task{
		processor: processor,
		validator: validator.New(v10),
	}

	result := sendTestRequest(
		http.MethodPost,
		nil,
		bytes.NewBufferString(`{"id": 42, "difficulty_group": "IMPOSSIBLE", "short_desc": "Reverse a linked list"}`),
		handler.Create,
	)
	assert.Equal(t, http.StatusBadRequest, result.StatusCode, "неизвестная группа сложности")
	require.NoError(t, result.Body.Close())
	processor.AssertExpectations(t)
}
