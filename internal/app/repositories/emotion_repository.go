package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sentimente/backend/internal/app/models"
	"github.com/sentimente/backend/internal/pkg/logger"
)

// EmotionRepository handles emotion record database operations.
// The table is an append-only log: rows are inserted and read, never
// updated or deleted.
type EmotionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEmotionRepository creates a new EmotionRepository
func NewEmotionRepository(db *pgxpool.Pool) *EmotionRepository {
	return &EmotionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateEmotion inserts a new emotion record
func (r *EmotionRepository) CreateEmotion(ctx context.Context, emotion *models.Emotion) (int64, error) {
	sql, args, err := r.sb.Insert("emotions").
		Columns("student_id", "class_id", "date", "emotion").
		Values(emotion.StudentID, emotion.ClassID, emotion.Date, emotion.Emotion).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create emotion SQL")
		return 0, fmt.Errorf("failed to build create emotion query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&emotion.ID, &emotion.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create emotion query")
		return 0, fmt.Errorf("error creating emotion: %w", err)
	}

	return emotion.ID, nil
}

// ListByClassAndDate retrieves all emotion records for one class on one
// exact calendar date.
func (r *EmotionRepository) ListByClassAndDate(ctx context.Context, classID int64, date string) ([]*models.Emotion, error) {
	sql, args, err := r.sb.Select("id", "student_id", "class_id", "date", "emotion", "created_at").
		From("emotions").
		Where(squirrel.Eq{"class_id": classID, "date": date}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list emotions by class/date SQL")
		return nil, fmt.Errorf("failed to build list emotions query: %w", err)
	}

	return r.queryEmotions(ctx, sql, args)
}

// ListByStudentAndClass retrieves a student's records within one class,
// ordered by date ascending.
func (r *EmotionRepository) ListByStudentAndClass(ctx context.Context, studentID, classID int64) ([]*models.Emotion, error) {
	sql, args, err := r.sb.Select("id", "student_id", "class_id", "date", "emotion", "created_at").
		From("emotions").
		Where(squirrel.Eq{"student_id": studentID, "class_id": classID}).
		OrderBy("date ASC", "id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list emotions by student SQL")
		return nil, fmt.Errorf("failed to build list emotions query: %w", err)
	}

	return r.queryEmotions(ctx, sql, args)
}

func (r *EmotionRepository) queryEmotions(ctx context.Context, sql string, args []interface{}) ([]*models.Emotion, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list emotions query")
		return nil, fmt.Errorf("error querying emotions: %w", err)
	}
	defer rows.Close()

	emotions := []*models.Emotion{}
	for rows.Next() {
		emotion := &models.Emotion{}
		if err := rows.Scan(&emotion.ID, &emotion.StudentID, &emotion.ClassID,
			&emotion.Date, &emotion.Emotion, &emotion.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning emotion row")
			return nil, fmt.Errorf("error scanning emotion row: %w", err)
		}
		emotions = append(emotions, emotion)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating emotion rows")
		return nil, fmt.Errorf("error iterating emotion rows: %w", err)
	}

	return emotions, nil
}
