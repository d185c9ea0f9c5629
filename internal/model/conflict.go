package model

// Conflict описывает столкновение кандидата с существующей сессией:
// тот же календарный день, тот же преподаватель, пересекающиеся окна времени.
// Значение производное, живёт только на время проверки и никуда не сохраняется.
type Conflict struct {
	SessionID  string `json:"sessionId"`
	Date       Date   `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	CourseName string `json:"courseName"`
	TeacherID  string `json:"teacherId,omitempty"`
}
