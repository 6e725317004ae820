package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sentimente/backend/internal/app/models"
)

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// IClassRepository defines the interface for class-related database operations
type IClassRepository interface {
	CreateClassWithRoster(ctx context.Context, class *models.Class, studentNames []string) error
	GetClassByID(ctx context.Context, id int64) (*models.Class, error)
	GetClassesByTeacher(ctx context.Context, teacherID int64) ([]*models.Class, error)
}

// IStudentRepository defines the interface for student lookups
type IStudentRepository interface {
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
}

// IEmotionRepository defines the interface for emotion record operations
type IEmotionRepository interface {
	CreateEmotion(ctx context.Context, emotion *models.Emotion) (int64, error)
	ListByClassAndDate(ctx context.Context, classID int64, date string) ([]*models.Emotion, error)
	ListByStudentAndClass(ctx context.Context, studentID, classID int64) ([]*models.Emotion, error)
}

// IDateRepository defines the interface for date marker operations
type IDateRepository interface {
	CreateDate(ctx context.Context, date *models.ClassDate) (int64, error)
	ListByTeacherAndClass(ctx context.Context, teacherID, classID int64) ([]*models.ClassDate, error)
	DeleteByIDAndTeacher(ctx context.Context, id, teacherID int64) error
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository    *UserRepository
	ClassRepository   *ClassRepository
	StudentRepository *StudentRepository
	EmotionRepository *EmotionRepository
	DateRepository    *DateRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db),
		ClassRepository:   NewClassRepository(db),
		StudentRepository: NewStudentRepository(db),
		EmotionRepository: NewEmotionRepository(db),
		DateRepository:    NewDateRepository(db),
	}
}
