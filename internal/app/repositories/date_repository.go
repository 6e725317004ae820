package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sentimente/backend/internal/app/models"
	"github.com/sentimente/backend/internal/pkg/apperrors"
	"github.com/sentimente/backend/internal/pkg/logger"
)

// DateRepository handles date marker database operations
type DateRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDateRepository creates a new DateRepository
func NewDateRepository(db *pgxpool.Pool) *DateRepository {
	return &DateRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateDate inserts a new date marker
func (r *DateRepository) CreateDate(ctx context.Context, date *models.ClassDate) (int64, error) {
	sql, args, err := r.sb.Insert("class_dates").
		Columns("teacher_id", "class_id", "date").
		Values(date.TeacherID, date.ClassID, date.Date).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create date SQL")
		return 0, fmt.Errorf("failed to build create date query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&date.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create date query")
		return 0, fmt.Errorf("error creating date: %w", err)
	}

	return date.ID, nil
}

// ListByTeacherAndClass retrieves all date markers for one teacher and class
func (r *DateRepository) ListByTeacherAndClass(ctx context.Context, teacherID, classID int64) ([]*models.ClassDate, error) {
	sql, args, err := r.sb.Select("id", "teacher_id", "class_id", "date").
		From("class_dates").
		Where(squirrel.Eq{"teacher_id": teacherID, "class_id": classID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list dates SQL")
		return nil, fmt.Errorf("failed to build list dates query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list dates query")
		return nil, fmt.Errorf("error querying dates: %w", err)
	}
	defer rows.Close()

	dates := []*models.ClassDate{}
	for rows.Next() {
		date := &models.ClassDate{}
		if err := rows.Scan(&date.ID, &date.TeacherID, &date.ClassID, &date.Date); err != nil {
			logger.Error().Err(err).Msg("Error scanning date row")
			return nil, fmt.Errorf("error scanning date row: %w", err)
		}
		dates = append(dates, date)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating date rows")
		return nil, fmt.Errorf("error iterating date rows: %w", err)
	}

	return dates, nil
}

// DeleteByIDAndTeacher removes a date marker owned by the given teacher.
// Deleting an unknown id, or another teacher's marker, yields ErrDateNotFound.
func (r *DateRepository) DeleteByIDAndTeacher(ctx context.Context, id, teacherID int64) error {
	sql, args, err := r.sb.Delete("class_dates").
		Where(squirrel.Eq{"id": id, "teacher_id": teacherID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete date SQL")
		return fmt.Errorf("failed to build delete date query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("dateID", id).Msg("Error executing delete date query")
		return fmt.Errorf("error deleting date: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDateNotFound
	}

	return nil
}
