package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Freeeeeet/course_scheduler/internal/model"
	"go.uber.org/zap"
)

// Client клиент REST API бэкенда планирования.
// Таймауты — ответственность транспорта, поэтому задаются здесь,
// а не в вызывающем коде.
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
	logger     *zap.Logger
}

// New создаёт клиент API. authToken может быть пустым —
// тогда заголовок Authorization не отправляется.
func New(baseURL, authToken string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		authToken:  authToken,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// pendingResponse бэкенд отвечает либо голым массивом курсов,
// либо обёрткой {success, courses}
type pendingResponse struct {
	Success bool           `json:"success"`
	Courses []model.Course `json:"courses"`
}

// GetPendingCourses получает курсы, ожидающие планирования
func (c *Client) GetPendingCourses(ctx context.Context) ([]model.Course, error) {
	body, err := c.get(ctx, "/pending-schedule")
	if err != nil {
		return nil, fmt.Errorf("get pending courses: %w", err)
	}
	return decodeCourses(body)
}

// GetScheduledCourses получает все курсы с уже назначенными сессиями
func (c *Client) GetScheduledCourses(ctx context.Context) ([]model.Course, error) {
	body, err := c.get(ctx, "/scheduled-sessions")
	if err != nil {
		return nil, fmt.Errorf("get scheduled courses: %w", err)
	}
	return decodeCourses(body)
}

// GetCourseSchedule получает один курс вместе с его расписанием
func (c *Client) GetCourseSchedule(ctx context.Context, courseID string) (*model.Course, error) {
	body, err := c.get(ctx, "/courses/"+url.PathEscape(courseID)+"/schedule")
	if err != nil {
		return nil, fmt.Errorf("get course schedule: %w", err)
	}
	var course model.Course
	if err := json.Unmarshal(body, &course); err != nil {
		return nil, fmt.Errorf("decode course: %w", err)
	}
	return &course, nil
}

// SubmitSchedule отправляет итоговый список сессий курса.
// Любой не-2xx ответ считается неудачей отправки.
func (c *Client) SubmitSchedule(ctx context.Context, courseID string, sessions []model.Session) error {
	payload := struct {
		CourseID string          `json:"courseId"`
		Sessions []model.Session `json:"sessions"`
	}{CourseID: courseID, Sessions: sessions}

	if _, err := c.post(ctx, "/submit-schedule", payload); err != nil {
		return fmt.Errorf("submit schedule: %w", err)
	}
	return nil
}

// CheckConflicts просит бэкенд проверить сессии на конфликты.
// Дополнение к локальной проверке, не замена.
func (c *Client) CheckConflicts(ctx context.Context, sessions []model.Session) ([]model.Conflict, error) {
	payload := struct {
		Sessions []model.Session `json:"sessions"`
	}{Sessions: sessions}

	body, err := c.post(ctx, "/check-conflicts", payload)
	if err != nil {
		return nil, fmt.Errorf("check conflicts: %w", err)
	}

	var conflicts []model.Conflict
	if err := json.Unmarshal(body, &conflicts); err != nil {
		return nil, fmt.Errorf("decode conflicts: %w", err)
	}
	return conflicts, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	return c.do(req)
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	req.Header.Set("Content-Type", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("API request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("API request returned error status",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return body, nil
}

// decodeCourses принимает оба формата ответа со списком курсов
func decodeCourses(body []byte) ([]model.Course, error) {
	var courses []model.Course
	if err := json.Unmarshal(body, &courses); err == nil {
		return courses, nil
	}

	var wrapped pendingResponse
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("decode courses: %w", err)
	}
	return wrapped.Courses, nil
}
