package models

import (
	"time"
)

// Class defines the class model based on the 'classes' table.
// The roster is resolved through students.class_id, so creating a class
// grows its owner's class list without touching the users row.
type Class struct {
	ID        int64      `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	TeacherID int64      `json:"teacherId" db:"teacher_id"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	Students  []*Student `json:"students"` // Relation, no db tag
}
