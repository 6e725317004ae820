package models

// ClassDate defines a calendar marker based on the 'class_dates' table.
// It records that a class session happened on a date, independent of any
// emotions collected that day. The date is kept as the label the client
// sent, not a parsed timestamp.
type ClassDate struct {
	ID        int64  `json:"id" db:"id"`
	TeacherID int64  `json:"teacherId" db:"teacher_id"`
	ClassID   int64  `json:"classId" db:"class_id"`
	Date      string `json:"date" db:"date"`
}
