package services

import (
	"context"
	"time"

	"github.com/sentimente/backend/internal/app/models"
	"github.com/sentimente/backend/internal/app/models/dto"
	"github.com/sentimente/backend/internal/app/repositories"
	"github.com/sentimente/backend/internal/pkg/apperrors"
	"github.com/sentimente/backend/internal/pkg/logger"
)

// dateLayout is the wire format for check-in dates
const dateLayout = "2006-01-02"

// EmotionService handles emotion check-ins, tallies and histories
type EmotionService struct {
	emotionRepo repositories.IEmotionRepository
	studentRepo repositories.IStudentRepository
	classRepo   repositories.IClassRepository
}

// NewEmotionService creates a new EmotionService
func NewEmotionService(
	emotionRepo repositories.IEmotionRepository,
	studentRepo repositories.IStudentRepository,
	classRepo repositories.IClassRepository,
) *EmotionService {
	return &EmotionService{
		emotionRepo: emotionRepo,
		studentRepo: studentRepo,
		classRepo:   classRepo,
	}
}

// RecordEmotion stores one check-in for a student in a class. The label must
// be one of the accepted categories and the student must belong to the class;
// nothing is persisted otherwise.
func (s *EmotionService) RecordEmotion(ctx context.Context, classID, studentID int64, req dto.RecordEmotionRequest) (*models.Emotion, error) {
	if !models.IsValidEmotionCategory(req.Emotion) {
		return nil, apperrors.ErrInvalidEmotionCategory
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("date must be in YYYY-MM-DD format")
	}

	student, err := s.studentRepo.GetStudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student.ClassID != classID {
		return nil, apperrors.NewValidationError("student does not belong to class")
	}

	emotion := &models.Emotion{
		StudentID: studentID,
		ClassID:   classID,
		Date:      date,
		Emotion:   req.Emotion,
	}

	if _, err := s.emotionRepo.CreateEmotion(ctx, emotion); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("studentID", studentID).
		Int64("classID", classID).
		Str("date", req.Date).
		Msg("Emotion recorded")

	return emotion, nil
}

// TallyVotes counts check-ins per emotion label for one class on one date.
// Labels nobody picked are omitted from the result.
func (s *EmotionService) TallyVotes(ctx context.Context, classID int64, date string) (*dto.VotesResponse, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, apperrors.NewValidationError("date must be in YYYY-MM-DD format")
	}

	if _, err := s.classRepo.GetClassByID(ctx, classID); err != nil {
		return nil, err
	}

	emotions, err := s.emotionRepo.ListByClassAndDate(ctx, classID, date)
	if err != nil {
		return nil, err
	}

	votes := make(map[string]int)
	for _, emotion := range emotions {
		votes[emotion.Emotion]++
	}

	return &dto.VotesResponse{Votes: votes}, nil
}

// StudentHistory returns a student's check-ins within one class, oldest first
func (s *EmotionService) StudentHistory(ctx context.Context, classID, studentID int64) ([]dto.HistoryEntry, error) {
	student, err := s.studentRepo.GetStudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student.ClassID != classID {
		return nil, apperrors.NewValidationError("student does not belong to class")
	}

	emotions, err := s.emotionRepo.ListByStudentAndClass(ctx, studentID, classID)
	if err != nil {
		return nil, err
	}

	history := make([]dto.HistoryEntry, 0, len(emotions))
	for _, emotion := range emotions {
		history = append(history, dto.HistoryEntry{
			Date:    emotion.Date.Format(dateLayout),
			Emotion: emotion.Emotion,
		})
	}

	return history, nil
}
