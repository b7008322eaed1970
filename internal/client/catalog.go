package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/asmolkov/taskhub/internal/entity"
	"github.com/imroc/req/v3"
)

type Catalog struct {
	req *req.Client
}

func NewCatalog(addr string) *Catalog {
	return &Catalog{
		req: req.C().
			SetBaseURL(addr).
			SetTimeout(5 * time.Second),
	}
}

// GetTasks отправляет запрос к каталогу задач для получения задач
// с идентификатором каталога больше after. При ответе сервиса с кодом 429
// пытается выполнить повторный запрос через минуту.
func (c *Catalog) GetTasks(ctx context.Context, after int64) ([]entity.Task, error) {
	var respBody []struct {
		ID              int64  `json:"id"`
		DifficultyGroup string `json:"difficulty_group"`
		ShortDesc       string `json:"short_desc"`
		ElapsedTime     int64  `json:"elapsed_time"`
	}
	resp, err := c.req.R().
		SetContext(ctx).
		SetRetryCount(2).
		SetRetryFixedInterval(60*time.Second).
		SetRetryCondition(func(resp *req.Response, err error) bool {
			return err == nil && resp.StatusCode == http.StatusTooManyRequests
		}).
		SetSuccessResult(&respBody).
		SetQueryParam("after", fmt.Sprintf("%d", after)).
		Get("/api/tasks")
	if err != nil {
		return nil, err
	}

	if resp.IsErrorState() {
		return nil, fmt.Errorf("server responded with status code %d", resp.StatusCode)
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	tasks := make([]entity.Task, 0, len(respBody))
	for _, t := range respBody {
		tasks = append(tasks, entity.Task{
			ExtID:           t.ID,
			DifficultyGroup: t.DifficultyGroup,
			ShortDesc:       t.ShortDesc,
			ElapsedTime:     t.ElapsedTime,
		})
	}

	return tasks, nil
}
