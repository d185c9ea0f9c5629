package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Freeeeeet/course_scheduler/internal/apiclient"
	"github.com/Freeeeeet/course_scheduler/internal/model"
	"github.com/Freeeeeet/course_scheduler/internal/notify"
	"github.com/Freeeeeet/course_scheduler/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingNotifier struct {
	mu    sync.Mutex
	kinds []notify.Kind
	msgs  []string
}

func (n *recordingNotifier) Show(_ context.Context, kind notify.Kind, message string, _ time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.kinds = append(n.kinds, kind)
	n.msgs = append(n.msgs, message)
}

type recordingDispatcher struct {
	mu      sync.Mutex
	actions []store.Action
}

func (d *recordingDispatcher) Dispatch(action store.Action) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.actions = append(d.actions, action)
}

func (d *recordingDispatcher) all() []store.Action {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]store.Action(nil), d.actions...)
}

func validSessions() []model.Session {
	return []model.Session{
		{ID: "s-1", Date: model.NewDate(2024, time.June, 10), StartTime: "09:00", EndTime: "10:00"},
	}
}

// api == nil: любой сетевой вызов при нарушенном предусловии
// уронит тест паникой вместо тихого запроса.
func newGuardedService(notifier notify.Notifier, dispatcher store.Dispatcher) *SchedulerService {
	return NewSchedulerService(nil, notifier, dispatcher, zap.NewNop())
}

func TestSubmitCourseSchedule_emptyCourseID(t *testing.T) {
	notifier := &recordingNotifier{}
	dispatcher := &recordingDispatcher{}
	svc := newGuardedService(notifier, dispatcher)

	err := svc.SubmitCourseSchedule(context.Background(), "", validSessions())
	require.ErrorIs(t, err, ErrScheduleInvalid)

	assert.Empty(t, dispatcher.all(), "invalid submission must not be dispatched")
	require.Len(t, notifier.kinds, 1)
	assert.Equal(t, notify.KindAlert, notifier.kinds[0])
}

func TestSubmitCourseSchedule_emptySessions(t *testing.T) {
	notifier := &recordingNotifier{}
	dispatcher := &recordingDispatcher{}
	svc := newGuardedService(notifier, dispatcher)

	err := svc.SubmitCourseSchedule(context.Background(), "c-1", nil)
	require.ErrorIs(t, err, ErrScheduleInvalid)
	assert.Empty(t, dispatcher.all())
}

func TestSubmitCourseSchedule_invalidSession(t *testing.T) {
	notifier := &recordingNotifier{}
	dispatcher := &recordingDispatcher{}
	svc := newGuardedService(notifier, dispatcher)

	sessions := validSessions()
	sessions[0].EndTime = "09:00" // конец не позже начала

	err := svc.SubmitCourseSchedule(context.Background(), "c-1", sessions)
	require.ErrorIs(t, err, ErrScheduleInvalid)
	assert.Empty(t, dispatcher.all())
	require.Len(t, notifier.msgs, 1)
	assert.Contains(t, notifier.msgs[0], "Cannot submit schedule")
}

func TestSubmitCourseSchedule_valid(t *testing.T) {
	notifier := &recordingNotifier{}
	dispatcher := &recordingDispatcher{}
	svc := newGuardedService(notifier, dispatcher)

	err := svc.SubmitCourseSchedule(context.Background(), "c-1", validSessions())
	require.NoError(t, err)

	actions := dispatcher.all()
	require.Len(t, actions, 1)
	submit, ok := actions[0].(store.SubmitSchedule)
	require.True(t, ok)
	assert.Equal(t, "c-1", submit.CourseID)
	assert.Empty(t, notifier.kinds, "valid submission must not alert")
}

func TestEffect_submitScheduleSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := &recordingNotifier{}
	dispatcher := &recordingDispatcher{}
	api := apiclient.New(server.URL, "", time.Second, zap.NewNop())
	svc := NewSchedulerService(api, notifier, dispatcher, zap.NewNop())

	svc.Effect(context.Background(), store.SubmitSchedule{CourseID: "c-1", Sessions: validSessions()}, store.NewState(), dispatcher)

	actions := dispatcher.all()
	require.Len(t, actions, 1)
	success, ok := actions[0].(store.SubmitScheduleSuccess)
	require.True(t, ok)
	assert.Equal(t, "c-1", success.CourseID)

	require.Len(t, notifier.kinds, 1)
	assert.Equal(t, notify.KindSuccess, notifier.kinds[0])
}

func TestEffect_submitScheduleFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	notifier := &recordingNotifier{}
	dispatcher := &recordingDispatcher{}
	api := apiclient.New(server.URL, "", time.Second, zap.NewNop())
	svc := NewSchedulerService(api, notifier, dispatcher, zap.NewNop())

	svc.Effect(context.Background(), store.SubmitSchedule{CourseID: "c-1", Sessions: validSessions()}, store.NewState(), dispatcher)

	actions := dispatcher.all()
	require.Len(t, actions, 1)
	_, ok := actions[0].(store.SubmitScheduleFail)
	require.True(t, ok, "failed submit must dispatch the fail action")

	require.Len(t, notifier.kinds, 1)
	assert.Equal(t, notify.KindAlert, notifier.kinds[0])
}

func TestEffect_loadPendingCourses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"c-1","name":"Algebra","teacher":"Ivanov"}]`))
	}))
	defer server.Close()

	notifier := &recordingNotifier{}
	dispatcher := &recordingDispatcher{}
	api := apiclient.New(server.URL, "", time.Second, zap.NewNop())
	svc := NewSchedulerService(api, notifier, dispatcher, zap.NewNop())

	svc.Effect(context.Background(), store.LoadPendingCourses{}, store.NewState(), dispatcher)

	actions := dispatcher.all()
	require.Len(t, actions, 1)
	success, ok := actions[0].(store.LoadPendingCoursesSuccess)
	require.True(t, ok)
	require.Len(t, success.Courses, 1)
	assert.Equal(t, "c-1", success.Courses[0].ID)
}
