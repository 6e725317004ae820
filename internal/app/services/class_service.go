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

// ClassService handles class and roster operations
type ClassService struct {
	classRepo repositories.IClassRepository
}

// NewClassService creates a new ClassService
func NewClassService(classRepo repositories.IClassRepository) *ClassService {
	return &ClassService{classRepo: classRepo}
}

// CreateClass creates a class with its initial roster for the given teacher.
// The students list must be present, though it may be empty. Roster entries
// with a blank name are skipped rather than rejected.
func (s *ClassService) CreateClass(ctx context.Context, teacherID int64, req dto.CreateClassRequest) (*models.Class, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("class name is required")
	}
	if req.Students == nil {
		return nil, apperrors.NewValidationError("students list is required")
	}

	studentNames := make([]string, 0, len(req.Students))
	for _, entry := range req.Students {
		studentName := strings.TrimSpace(entry.Name)
		if studentName == "" {
			continue
		}
		studentNames = append(studentNames, studentName)
	}

	class := &models.Class{
		Name:      name,
		TeacherID: teacherID,
	}

	if err := s.classRepo.CreateClassWithRoster(ctx, class, studentNames); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("classID", class.ID).
		Int64("teacherID", teacherID).
		Int("students", len(class.Students)).
		Msg("Class created")

	return class, nil
}

// ListClasses returns all classes owned by the teacher, rosters resolved
func (s *ClassService) ListClasses(ctx context.Context, teacherID int64) ([]*models.Class, error) {
	return s.classRepo.GetClassesByTeacher(ctx, teacherID)
}

// GetClass returns a single class with its roster. Any authenticated user
// may read a class, which allows shared check-in screens.
func (s *ClassService) GetClass(ctx context.Context, classID int64) (*models.Class, error) {
	return s.classRepo.GetClassByID(ctx, classID)
}
