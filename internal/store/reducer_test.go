package store

import (
	"testing"
	"time"

	"github.com/Freeeeeet/course_scheduler/internal/model"
)

func pendingCourse(id string) model.Course {
	return model.Course{ID: id, Name: "Course " + id, Teacher: "Ivanov", TeacherID: "T1"}
}

func TestReduce_pendingCoursesReplacedWholesale(t *testing.T) {
	state := NewState()
	state.PendingCourses = []model.Course{pendingCourse("old-1"), pendingCourse("old-2")}

	next := Reduce(state, LoadPendingCoursesSuccess{
		Courses: []model.Course{pendingCourse("new-1")},
	})

	if len(next.PendingCourses) != 1 || next.PendingCourses[0].ID != "new-1" {
		t.Errorf("pending courses not replaced wholesale: %+v", next.PendingCourses)
	}
	if next.Loading {
		t.Error("loading flag not cleared")
	}
	// Исходный снимок не тронут
	if len(state.PendingCourses) != 2 {
		t.Error("input state mutated")
	}
}

func TestReduce_loadFailKeepsPendingList(t *testing.T) {
	state := NewState()
	state.PendingCourses = []model.Course{pendingCourse("c-1")}
	state.Loading = true

	next := Reduce(state, LoadPendingCoursesFail{Err: "network down"})

	if len(next.PendingCourses) != 1 {
		t.Error("pending list must stay untouched on failure")
	}
	if next.Loading {
		t.Error("loading flag not cleared")
	}
	if next.Err != "network down" {
		t.Errorf("error = %q, want recorded message", next.Err)
	}
}

func TestReduce_submitScheduleSuccessRemovesCourse(t *testing.T) {
	state := NewState()
	state.PendingCourses = []model.Course{pendingCourse("c-1"), pendingCourse("c-2")}

	next := Reduce(state, SubmitScheduleSuccess{CourseID: "c-1"})

	if len(next.PendingCourses) != 1 || next.PendingCourses[0].ID != "c-2" {
		t.Errorf("course not removed from pending set: %+v", next.PendingCourses)
	}
}

func TestReduce_submitScheduleFailLeavesPendingSet(t *testing.T) {
	state := NewState()
	state.PendingCourses = []model.Course{pendingCourse("c-1")}
	state.Loading = true

	next := Reduce(state, SubmitScheduleFail{Err: "status 500"})

	if len(next.PendingCourses) != 1 {
		t.Error("pending set must be unchanged on submit failure")
	}
	if next.Err != "status 500" {
		t.Errorf("error = %q, want recorded message", next.Err)
	}
	if next.Loading {
		t.Error("loading flag not cleared")
	}
}

func TestReduce_addCourseSession(t *testing.T) {
	day := model.NewDate(2024, time.June, 10)
	state := NewState()
	state.Courses = []model.Course{pendingCourse("c-1")}
	state.PendingCourses = []model.Course{pendingCourse("c-1")}

	session := model.Session{ID: "s-1", Date: day, StartTime: "09:00", EndTime: "10:00"}
	next := Reduce(state, AddCourseSession{CourseID: "c-1", Session: session})

	if len(next.Courses[0].Sessions) != 1 {
		t.Fatal("session not added to cached course")
	}
	// Членство в pending не пересматривается локальной правкой
	if len(next.PendingCourses) != 1 {
		t.Error("pending membership must not change on local session add")
	}
	if len(next.PendingCourses[0].Sessions) != 1 {
		t.Error("pending copy of the course must carry the new session")
	}
	// Исходные срезы не тронуты
	if len(state.Courses[0].Sessions) != 0 {
		t.Error("input state mutated")
	}
}

func TestReduce_updateAndDeleteCourseSession(t *testing.T) {
	day := model.NewDate(2024, time.June, 10)
	course := pendingCourse("c-1")
	course.Sessions = []model.Session{
		{ID: "s-1", Date: day, StartTime: "09:00", EndTime: "10:00"},
		{ID: "s-2", Date: day, StartTime: "11:00", EndTime: "12:00"},
	}
	state := NewState()
	state.Courses = []model.Course{course}

	updated := model.Session{ID: "s-1", Date: day, StartTime: "08:00", EndTime: "09:00"}
	next := Reduce(state, UpdateCourseSession{CourseID: "c-1", SessionID: "s-1", Session: updated})
	if next.Courses[0].Sessions[0].StartTime != "08:00" {
		t.Error("session not updated")
	}
	if next.Courses[0].Sessions[1].StartTime != "11:00" {
		t.Error("unrelated session changed")
	}

	next = Reduce(next, DeleteCourseSession{CourseID: "c-1", SessionID: "s-2"})
	if len(next.Courses[0].Sessions) != 1 || next.Courses[0].Sessions[0].ID != "s-1" {
		t.Errorf("delete result = %+v", next.Courses[0].Sessions)
	}
}

func TestReduce_toggleOverlapSetting(t *testing.T) {
	state := NewState()

	// До загрузки конфигурации переключатель игнорируется
	next := Reduce(state, ToggleOverlapSetting{Allow: true})
	if next.Config.AllowTeacherScheduleOverlap {
		t.Error("toggle before config load must be a no-op")
	}

	next = Reduce(state, LoadAppConfigSuccess{Config: model.AppConfig{AllowTeacherScheduleOverlap: false}})
	next = Reduce(next, ToggleOverlapSetting{Allow: true})
	if !next.Config.AllowTeacherScheduleOverlap {
		t.Error("toggle after config load must flip the flag")
	}
}

func TestReduce_configLoadFailFallsBackToDefaults(t *testing.T) {
	state := NewState()
	state.Config.AllowTeacherScheduleOverlap = true // мусор до загрузки

	next := Reduce(state, LoadAppConfigFail{Err: "connection refused"})

	if next.Config.AllowTeacherScheduleOverlap {
		t.Error("config must fall back to defaults on load failure")
	}
	if !next.ConfigLoaded {
		t.Error("fallback config still counts as loaded")
	}
	if next.Err == "" {
		t.Error("load failure must be recorded")
	}
}

func TestReduce_saveConfigSuccessClearsError(t *testing.T) {
	state := NewState()
	state.Err = "connection refused" // осталась от прошлой неудачи

	next := Reduce(state, SaveAppConfigSuccess{Config: model.AppConfig{AllowTeacherScheduleOverlap: true}})

	if next.Err != "" {
		t.Errorf("error = %q, successful save must clear a stale failure", next.Err)
	}
	if !next.Config.AllowTeacherScheduleOverlap {
		t.Error("saved config not applied")
	}
}

func TestState_allCoursesIncludesPending(t *testing.T) {
	day := model.NewDate(2024, time.June, 10)
	state := NewState()
	state.Courses = []model.Course{pendingCourse("c-1")}
	state.PendingCourses = []model.Course{pendingCourse("c-2")}

	// Локально добавленная сессия ожидающего курса тоже попадает в корпус
	state = Reduce(state, AddCourseSession{
		CourseID: "c-2",
		Session:  model.Session{ID: "s-1", Date: day, StartTime: "09:00", EndTime: "10:00"},
	})

	all := state.AllCourses()
	if len(all) != 2 {
		t.Fatalf("AllCourses() returned %d courses, want 2", len(all))
	}
	found := false
	for _, c := range all {
		if c.ID == "c-2" && len(c.Sessions) == 1 {
			found = true
		}
	}
	if !found {
		t.Error("pending course with its local session missing from the union")
	}
}

func TestReduce_checkConflicts(t *testing.T) {
	state := NewState()
	state.Conflicts = []model.Conflict{{SessionID: "stale"}}

	next := Reduce(state, CheckConflicts{})
	if next.Conflicts != nil {
		t.Error("conflict list must be cleared when a check starts")
	}

	next = Reduce(next, CheckConflictsSuccess{Conflicts: []model.Conflict{{SessionID: "s-1"}}})
	if len(next.Conflicts) != 1 || next.Conflicts[0].SessionID != "s-1" {
		t.Errorf("conflicts = %+v", next.Conflicts)
	}
}

func TestReduce_unknownActionReturnsSameState(t *testing.T) {
	state := NewState()
	state.PendingCourses = []model.Course{pendingCourse("c-1")}

	next := Reduce(state, fakeAction{})
	if len(next.PendingCourses) != 1 {
		t.Error("unknown action must leave state untouched")
	}
}

type fakeAction struct{}

func (fakeAction) Type() string { return "test/fake" }
