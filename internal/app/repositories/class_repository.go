package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sentimente/backend/internal/app/models"
	"github.com/sentimente/backend/internal/db"
	"github.com/sentimente/backend/internal/pkg/apperrors"
	"github.com/sentimente/backend/internal/pkg/logger"
)

// ClassRepository handles class database operations
type ClassRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewClassRepository creates a new ClassRepository
func NewClassRepository(db *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateClassWithRoster creates a class and its initial students in one
// transaction, so a failure partway through leaves no orphaned rows.
// On success class.ID and class.Students are filled in.
func (r *ClassRepository) CreateClassWithRoster(ctx context.Context, class *models.Class, studentNames []string) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		insertClass, args, err := r.sb.Insert("classes").
			Columns("name", "teacher_id").
			Values(class.Name, class.TeacherID).
			Suffix("RETURNING id, created_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create class query: %w", err)
		}

		if err := tx.QueryRow(ctx, insertClass, args...).Scan(&class.ID, &class.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error executing create class query")
			return fmt.Errorf("error creating class: %w", err)
		}

		class.Students = make([]*models.Student, 0, len(studentNames))
		for _, name := range studentNames {
			insertStudent, args, err := r.sb.Insert("students").
				Columns("name", "class_id").
				Values(name, class.ID).
				Suffix("RETURNING id").
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build create student query: %w", err)
			}

			student := &models.Student{Name: name, ClassID: class.ID}
			if err := tx.QueryRow(ctx, insertStudent, args...).Scan(&student.ID); err != nil {
				logger.Error().Err(err).Int64("classID", class.ID).Msg("Error executing create student query")
				return fmt.Errorf("error creating student: %w", err)
			}
			class.Students = append(class.Students, student)
		}

		return nil
	})
}

// GetClassByID retrieves a class with its roster resolved
func (r *ClassRepository) GetClassByID(ctx context.Context, id int64) (*models.Class, error) {
	sql, args, err := r.sb.Select("id", "name", "teacher_id", "created_at").
		From("classes").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get class by ID SQL")
		return nil, fmt.Errorf("failed to build get class query: %w", err)
	}

	class := &models.Class{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&class.ID, &class.Name, &class.TeacherID, &class.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClassNotFound
		}
		logger.Error().Err(err).Int64("classID", id).Msg("Error scanning class row")
		return nil, fmt.Errorf("error getting class by ID: %w", err)
	}

	if err := r.attachStudents(ctx, []*models.Class{class}); err != nil {
		return nil, err
	}

	return class, nil
}

// GetClassesByTeacher retrieves all classes owned by a teacher, rosters resolved
func (r *ClassRepository) GetClassesByTeacher(ctx context.Context, teacherID int64) ([]*models.Class, error) {
	sql, args, err := r.sb.Select("id", "name", "teacher_id", "created_at").
		From("classes").
		Where(squirrel.Eq{"teacher_id": teacherID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get classes by teacher SQL")
		return nil, fmt.Errorf("failed to build get classes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get classes by teacher query")
		return nil, fmt.Errorf("error querying classes: %w", err)
	}
	defer rows.Close()

	classes := []*models.Class{}
	for rows.Next() {
		class := &models.Class{}
		if err := rows.Scan(&class.ID, &class.Name, &class.TeacherID, &class.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning class row")
			return nil, fmt.Errorf("error scanning class row: %w", err)
		}
		classes = append(classes, class)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating class rows")
		return nil, fmt.Errorf("error iterating class rows: %w", err)
	}

	if err := r.attachStudents(ctx, classes); err != nil {
		return nil, err
	}

	return classes, nil
}

// attachStudents resolves the roster for each class in one query
func (r *ClassRepository) attachStudents(ctx context.Context, classes []*models.Class) error {
	if len(classes) == 0 {
		return nil
	}

	byID := make(map[int64]*models.Class, len(classes))
	classIDs := make([]int64, 0, len(classes))
	for _, class := range classes {
		class.Students = []*models.Student{}
		byID[class.ID] = class
		classIDs = append(classIDs, class.ID)
	}

	sql, args, err := r.sb.Select("id", "name", "class_id").
		From("students").
		Where(squirrel.Eq{"class_id": classIDs}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get students SQL")
		return fmt.Errorf("failed to build get students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get students query")
		return fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		student := &models.Student{}
		if err := rows.Scan(&student.ID, &student.Name, &student.ClassID); err != nil {
			logger.Error().Err(err).Msg("Error scanning student row")
			return fmt.Errorf("error scanning student row: %w", err)
		}
		if class, ok := byID[student.ClassID]; ok {
			class.Students = append(class.Students, student)
		}
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return fmt.Errorf("error iterating student rows: %w", err)
	}

	return nil
}
