package services

import (
	"context"
	"sort"
	"time"

	"github.com/sentimente/backend/internal/app/models"
	"github.com/sentimente/backend/internal/pkg/apperrors"
)

// In-memory repository fakes backing the service tests. They mirror the
// behavior of the SQL repositories, including the sentinel errors they
// return.

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*models.User{}, nextID: 1}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *models.User) (int64, error) {
	for _, u := range f.users {
		if u.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	id := f.nextID
	f.nextID++
	stored := *user
	stored.ID = id
	stored.CreatedAt = time.Now()
	f.users[id] = &stored
	return id, nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeClassRepo struct {
	classes       map[int64]*models.Class
	nextClassID   int64
	nextStudentID int64
}

func newFakeClassRepo() *fakeClassRepo {
	return &fakeClassRepo{classes: map[int64]*models.Class{}, nextClassID: 1, nextStudentID: 1}
}

func (f *fakeClassRepo) CreateClassWithRoster(_ context.Context, class *models.Class, studentNames []string) error {
	class.ID = f.nextClassID
	f.nextClassID++
	class.CreatedAt = time.Now()
	class.Students = make([]*models.Student, 0, len(studentNames))
	for _, name := range studentNames {
		student := &models.Student{ID: f.nextStudentID, Name: name, ClassID: class.ID}
		f.nextStudentID++
		class.Students = append(class.Students, student)
	}
	stored := *class
	f.classes[class.ID] = &stored
	return nil
}

func (f *fakeClassRepo) GetClassByID(_ context.Context, id int64) (*models.Class, error) {
	class, ok := f.classes[id]
	if !ok {
		return nil, apperrors.ErrClassNotFound
	}
	copied := *class
	return &copied, nil
}

func (f *fakeClassRepo) GetClassesByTeacher(_ context.Context, teacherID int64) ([]*models.Class, error) {
	classes := []*models.Class{}
	for _, class := range f.classes {
		if class.TeacherID == teacherID {
			copied := *class
			classes = append(classes, &copied)
		}
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i].ID < classes[j].ID })
	return classes, nil
}

// studentOf finds a student in any class roster, like a students table lookup
func (f *fakeClassRepo) studentOf(id int64) (*models.Student, bool) {
	for _, class := range f.classes {
		for _, student := range class.Students {
			if student.ID == id {
				return student, true
			}
		}
	}
	return nil, false
}

type fakeStudentRepo struct {
	classRepo *fakeClassRepo
}

func (f *fakeStudentRepo) GetStudentByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := f.classRepo.studentOf(id)
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *student
	return &copied, nil
}

type fakeEmotionRepo struct {
	emotions []*models.Emotion
	nextID   int64
}

func newFakeEmotionRepo() *fakeEmotionRepo {
	return &fakeEmotionRepo{nextID: 1}
}

func (f *fakeEmotionRepo) CreateEmotion(_ context.Context, emotion *models.Emotion) (int64, error) {
	emotion.ID = f.nextID
	f.nextID++
	emotion.CreatedAt = time.Now()
	stored := *emotion
	f.emotions = append(f.emotions, &stored)
	return emotion.ID, nil
}

func (f *fakeEmotionRepo) ListByClassAndDate(_ context.Context, classID int64, date string) ([]*models.Emotion, error) {
	result := []*models.Emotion{}
	for _, e := range f.emotions {
		if e.ClassID == classID && e.Date.Format("2006-01-02") == date {
			copied := *e
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeEmotionRepo) ListByStudentAndClass(_ context.Context, studentID, classID int64) ([]*models.Emotion, error) {
	result := []*models.Emotion{}
	for _, e := range f.emotions {
		if e.StudentID == studentID && e.ClassID == classID {
			copied := *e
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date.Equal(result[j].Date) {
			return result[i].ID < result[j].ID
		}
		return result[i].Date.Before(result[j].Date)
	})
	return result, nil
}

type fakeDateRepo struct {
	dates  map[int64]*models.ClassDate
	nextID int64
}

func newFakeDateRepo() *fakeDateRepo {
	return &fakeDateRepo{dates: map[int64]*models.ClassDate{}, nextID: 1}
}

func (f *fakeDateRepo) CreateDate(_ context.Context, date *models.ClassDate) (int64, error) {
	date.ID = f.nextID
	f.nextID++
	stored := *date
	f.dates[date.ID] = &stored
	return date.ID, nil
}

func (f *fakeDateRepo) ListByTeacherAndClass(_ context.Context, teacherID, classID int64) ([]*models.ClassDate, error) {
	result := []*models.ClassDate{}
	for _, d := range f.dates {
		if d.TeacherID == teacherID && d.ClassID == classID {
			copied := *d
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeDateRepo) DeleteByIDAndTeacher(_ context.Context, id, teacherID int64) error {
	date, ok := f.dates[id]
	if !ok || date.TeacherID != teacherID {
		return apperrors.ErrDateNotFound
	}
	delete(f.dates, id)
	return nil
}
