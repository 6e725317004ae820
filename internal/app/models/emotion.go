package models

import (
	"time"
)

// EmotionCategories is the closed set of accepted emotion labels.
// The labels are the localized values the check-in frontend displays.
var EmotionCategories = []string{
	"Feliz",
	"Triste",
	"Irritado",
	"Calmo",
	"Cansado",
	"Grato",
	"Ansioso",
	"Amado",
	"Confuso",
	"Pensativo",
	"Empolgado",
	"Frustrado",
	"Sensível",
	"Confiante",
	"Estressado",
	"Realizado",
}

// IsValidEmotionCategory reports whether label is one of the accepted categories.
func IsValidEmotionCategory(label string) bool {
	for _, c := range EmotionCategories {
		if c == label {
			return true
		}
	}
	return false
}

// Emotion defines an emotion observation based on the 'emotions' table.
// Records are append-only: they are created and read, never updated.
type Emotion struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	ClassID   int64     `json:"classId" db:"class_id"`
	Date      time.Time `json:"date" db:"date"`
	Emotion   string    `json:"emotion" db:"emotion"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
