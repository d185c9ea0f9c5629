package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Freeeeeet/course_scheduler/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, "test-token", 5*time.Second, zap.NewNop()), server
}

func TestGetPendingCourses_bareArray(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pending-schedule", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"c-1","name":"Algebra","teacher":"Ivanov","teacherId":"T1","sessions":[]}]`))
	})

	courses, err := client.GetPendingCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "c-1", courses[0].ID)
	assert.Equal(t, "T1", courses[0].TeacherID)
	assert.True(t, courses[0].Pending())
}

func TestGetPendingCourses_wrappedResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"courses":[{"id":"c-1","name":"Algebra","teacher":"Ivanov"},{"id":"c-2","name":"Physics","teacher":"Petrov"}]}`))
	})

	courses, err := client.GetPendingCourses(context.Background())
	require.NoError(t, err)
	assert.Len(t, courses, 2)
}

func TestGetPendingCourses_serverError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.GetPendingCourses(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestSubmitSchedule(t *testing.T) {
	var received struct {
		CourseID string          `json:"courseId"`
		Sessions []model.Session `json:"sessions"`
	}

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/submit-schedule", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	})

	sessions := []model.Session{
		{ID: "s-1", Date: model.NewDate(2024, time.June, 10), StartTime: "09:00", EndTime: "10:00"},
	}
	err := client.SubmitSchedule(context.Background(), "c-1", sessions)
	require.NoError(t, err)

	assert.Equal(t, "c-1", received.CourseID)
	require.Len(t, received.Sessions, 1)
	assert.Equal(t, "s-1", received.Sessions[0].ID)
	assert.True(t, received.Sessions[0].Date.Equal(model.NewDate(2024, time.June, 10)))
}

func TestSubmitSchedule_failureStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "conflict", http.StatusConflict)
	})

	err := client.SubmitSchedule(context.Background(), "c-1", nil)
	require.Error(t, err, "non-2xx must be a submission failure")
}

func TestCheckConflicts(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/check-conflicts", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"sessionId":"s-9","date":"2024-06-10","startTime":"09:00","endTime":"10:00","courseName":"Algebra","teacherId":"T1"}]`))
	})

	conflicts, err := client.CheckConflicts(context.Background(), []model.Session{{ID: "s-1"}})
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "s-9", conflicts[0].SessionID)
	assert.Equal(t, "Algebra", conflicts[0].CourseName)
}

func TestGetCourseSchedule(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/courses/c-1/schedule", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"c-1","name":"Algebra","teacher":"Ivanov","sessions":[{"id":"s-1","date":"2024-06-10T00:00:00Z","startTime":"09:00","endTime":"10:00"}]}`))
	})

	course, err := client.GetCourseSchedule(context.Background(), "c-1")
	require.NoError(t, err)
	require.Len(t, course.Sessions, 1)
	// Полный timestamp от бэкенда обрезается до календарного дня
	assert.True(t, course.Sessions[0].Date.Equal(model.NewDate(2024, time.June, 10)))
}
