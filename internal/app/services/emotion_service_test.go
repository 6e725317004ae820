package services

import (
	"context"
	"errors"
	"testing"

	"github.com/sentimente/backend/internal/app/models"
	"github.com/sentimente/backend/internal/app/models/dto"
	"github.com/sentimente/backend/internal/pkg/apperrors"
)

// setupEmotionTest seeds one class with two students and returns the wired
// service along with the class and its roster.
func setupEmotionTest(t *testing.T) (*EmotionService, *fakeEmotionRepo, *models.Class) {
	t.Helper()

	classRepo := newFakeClassRepo()
	emotionRepo := newFakeEmotionRepo()
	studentRepo := &fakeStudentRepo{classRepo: classRepo}

	class := &models.Class{Name: "5A", TeacherID: 1}
	if err := classRepo.CreateClassWithRoster(context.Background(), class, []string{"João", "Maria"}); err != nil {
		t.Fatalf("seed class: %v", err)
	}

	return NewEmotionService(emotionRepo, studentRepo, classRepo), emotionRepo, class
}

func TestRecordEmotion(t *testing.T) {
	svc, emotionRepo, class := setupEmotionTest(t)
	ctx := context.Background()
	student := class.Students[0]

	emotion, err := svc.RecordEmotion(ctx, class.ID, student.ID, dto.RecordEmotionRequest{
		Emotion: "Feliz",
		Date:    "2026-03-10",
	})
	if err != nil {
		t.Fatalf("record emotion: %v", err)
	}
	if emotion.ID == 0 {
		t.Error("expected assigned emotion ID")
	}
	if emotion.Date.Format("2006-01-02") != "2026-03-10" {
		t.Errorf("unexpected date %v", emotion.Date)
	}
	if len(emotionRepo.emotions) != 1 {
		t.Fatalf("expected 1 stored record, got %d", len(emotionRepo.emotions))
	}
}

// An invalid label must leave the store untouched.
func TestRecordEmotionInvalidCategory(t *testing.T) {
	svc, emotionRepo, class := setupEmotionTest(t)

	_, err := svc.RecordEmotion(context.Background(), class.ID, class.Students[0].ID, dto.RecordEmotionRequest{
		Emotion: "Entediado",
		Date:    "2026-03-10",
	})
	if !errors.Is(err, apperrors.ErrInvalidEmotionCategory) {
		t.Fatalf("expected ErrInvalidEmotionCategory, got %v", err)
	}
	if len(emotionRepo.emotions) != 0 {
		t.Errorf("expected no stored records, got %d", len(emotionRepo.emotions))
	}
}

func TestRecordEmotionBadDate(t *testing.T) {
	svc, emotionRepo, class := setupEmotionTest(t)

	_, err := svc.RecordEmotion(context.Background(), class.ID, class.Students[0].ID, dto.RecordEmotionRequest{
		Emotion: "Feliz",
		Date:    "10/03/2026",
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
	if len(emotionRepo.emotions) != 0 {
		t.Errorf("expected no stored records, got %d", len(emotionRepo.emotions))
	}
}

func TestRecordEmotionStudentOutsideClass(t *testing.T) {
	svc, _, class := setupEmotionTest(t)

	_, err := svc.RecordEmotion(context.Background(), class.ID+1, class.Students[0].ID, dto.RecordEmotionRequest{
		Emotion: "Feliz",
		Date:    "2026-03-10",
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed for foreign class, got %v", err)
	}
}

func TestTallyVotes(t *testing.T) {
	svc, _, class := setupEmotionTest(t)
	ctx := context.Background()
	joao, maria := class.Students[0], class.Students[1]

	checkins := []struct {
		studentID int64
		emotion   string
		date      string
	}{
		{joao.ID, "Feliz", "2026-03-10"},
		{maria.ID, "Feliz", "2026-03-10"},
		{joao.ID, "Triste", "2026-03-10"},
		{maria.ID, "Calmo", "2026-03-11"},
	}
	for _, c := range checkins {
		if _, err := svc.RecordEmotion(ctx, class.ID, c.studentID, dto.RecordEmotionRequest{
			Emotion: c.emotion, Date: c.date,
		}); err != nil {
			t.Fatalf("record %s: %v", c.emotion, err)
		}
	}

	votes, err := svc.TallyVotes(ctx, class.ID, "2026-03-10")
	if err != nil {
		t.Fatalf("tally votes: %v", err)
	}
	if votes.Votes["Feliz"] != 2 {
		t.Errorf("Feliz: expected 2 votes, got %d", votes.Votes["Feliz"])
	}
	if votes.Votes["Triste"] != 1 {
		t.Errorf("Triste: expected 1 vote, got %d", votes.Votes["Triste"])
	}
	// Calmo was on another date and must not leak into this tally
	if _, ok := votes.Votes["Calmo"]; ok {
		t.Error("Calmo should not appear for 2026-03-10")
	}
	// Unpicked labels are omitted, not reported as zero
	if _, ok := votes.Votes["Ansioso"]; ok {
		t.Error("labels with no votes should be omitted")
	}
}

func TestTallyVotesUnknownClass(t *testing.T) {
	svc, _, _ := setupEmotionTest(t)

	_, err := svc.TallyVotes(context.Background(), 99, "2026-03-10")
	if !errors.Is(err, apperrors.ErrClassNotFound) {
		t.Fatalf("expected ErrClassNotFound, got %v", err)
	}
}

func TestStudentHistoryOrderedByDate(t *testing.T) {
	svc, _, class := setupEmotionTest(t)
	ctx := context.Background()
	student := class.Students[0]

	// Recorded out of order on purpose
	dates := []string{"2026-03-12", "2026-03-10", "2026-03-11"}
	emotions := []string{"Cansado", "Feliz", "Grato"}
	for i := range dates {
		if _, err := svc.RecordEmotion(ctx, class.ID, student.ID, dto.RecordEmotionRequest{
			Emotion: emotions[i], Date: dates[i],
		}); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	history, err := svc.StudentHistory(ctx, class.ID, student.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(history))
	}

	wantDates := []string{"2026-03-10", "2026-03-11", "2026-03-12"}
	wantEmotions := []string{"Feliz", "Grato", "Cansado"}
	for i, entry := range history {
		if entry.Date != wantDates[i] || entry.Emotion != wantEmotions[i] {
			t.Errorf("entry %d: got %+v, want {%s %s}", i, entry, wantDates[i], wantEmotions[i])
		}
	}
}

func TestStudentHistoryUnknownStudent(t *testing.T) {
	svc, _, class := setupEmotionTest(t)

	_, err := svc.StudentHistory(context.Background(), class.ID, 99)
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}
