package services

import (
	"context"
	"strings"

	"github.com/sentimente/backend/internal/app/models"
	"github.com/sentimente/backend/internal/app/models/dto"
	"github.com/sentimente/backend/internal/app/repositories"
	"github.com/sentimente/backend/internal/pkg/apperrors"
	"github.com/sentimente/backend/internal/pkg/logger"
)

// DateService handles calendar marker operations
type DateService struct {
	dateRepo  repositories.IDateRepository
	classRepo repositories.IClassRepository
}

// NewDateService creates a new DateService
func NewDateService(dateRepo repositories.IDateRepository, classRepo repositories.IClassRepository) *DateService {
	return &DateService{
		dateRepo:  dateRepo,
		classRepo: classRepo,
	}
}

// ListDates returns the teacher's markers for one class
func (s *DateService) ListDates(ctx context.Context, teacherID, classID int64) ([]*models.ClassDate, error) {
	return s.dateRepo.ListByTeacherAndClass(ctx, teacherID, classID)
}

// AddDate creates a calendar marker owned by the teacher. The referenced
// class must exist.
func (s *DateService) AddDate(ctx context.Context, teacherID int64, req dto.AddDateRequest) (*models.ClassDate, error) {
	label := strings.TrimSpace(req.Date)
	if label == "" {
		return nil, apperrors.NewValidationError("date is required")
	}

	if _, err := s.classRepo.GetClassByID(ctx, req.ClassID); err != nil {
		return nil, err
	}

	date := &models.ClassDate{
		TeacherID: teacherID,
		ClassID:   req.ClassID,
		Date:      label,
	}

	if _, err := s.dateRepo.CreateDate(ctx, date); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("dateID", date.ID).
		Int64("classID", req.ClassID).
		Msg("Date marker added")

	return date, nil
}

// DeleteDate removes one of the teacher's markers. A marker that does not
// exist, or belongs to another teacher, yields ErrDateNotFound.
func (s *DateService) DeleteDate(ctx context.Context, teacherID, dateID int64) error {
	if err := s.dateRepo.DeleteByIDAndTeacher(ctx, dateID, teacherID); err != nil {
		return err
	}

	logger.Info().Int64("dateID", dateID).Msg("Date marker deleted")
	return nil
}
