package services

import (
	"context"
	"errors"
	"testing"

	"github.com/sentimente/backend/internal/app/models"
	"github.com/sentimente/backend/internal/app/models/dto"
	"github.com/sentimente/backend/internal/pkg/apperrors"
)

func setupDateTest(t *testing.T) (*DateService, *models.Class) {
	t.Helper()

	classRepo := newFakeClassRepo()
	class := &models.Class{Name: "5A", TeacherID: 1}
	if err := classRepo.CreateClassWithRoster(context.Background(), class, nil); err != nil {
		t.Fatalf("seed class: %v", err)
	}

	return NewDateService(newFakeDateRepo(), classRepo), class
}

func TestAddAndListDates(t *testing.T) {
	svc, class := setupDateTest(t)
	ctx := context.Background()

	marker, err := svc.AddDate(ctx, 1, dto.AddDateRequest{Date: "2026-03-10", ClassID: class.ID})
	if err != nil {
		t.Fatalf("add date: %v", err)
	}
	if marker.ID == 0 {
		t.Error("expected assigned marker ID")
	}

	dates, err := svc.ListDates(ctx, 1, class.ID)
	if err != nil {
		t.Fatalf("list dates: %v", err)
	}
	if len(dates) != 1 || dates[0].Date != "2026-03-10" {
		t.Fatalf("unexpected markers %+v", dates)
	}

	// Another teacher sees nothing for the same class
	other, err := svc.ListDates(ctx, 2, class.ID)
	if err != nil {
		t.Fatalf("list dates: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("expected no markers for teacher 2, got %d", len(other))
	}
}

func TestAddDateUnknownClass(t *testing.T) {
	svc, _ := setupDateTest(t)

	_, err := svc.AddDate(context.Background(), 1, dto.AddDateRequest{Date: "2026-03-10", ClassID: 99})
	if !errors.Is(err, apperrors.ErrClassNotFound) {
		t.Fatalf("expected ErrClassNotFound, got %v", err)
	}
}

func TestDeleteDate(t *testing.T) {
	svc, class := setupDateTest(t)
	ctx := context.Background()

	marker, err := svc.AddDate(ctx, 1, dto.AddDateRequest{Date: "2026-03-10", ClassID: class.ID})
	if err != nil {
		t.Fatalf("add date: %v", err)
	}

	if err := svc.DeleteDate(ctx, 1, marker.ID); err != nil {
		t.Fatalf("delete date: %v", err)
	}

	// A second delete of the same id is a 404, not a silent success
	if err := svc.DeleteDate(ctx, 1, marker.ID); !errors.Is(err, apperrors.ErrDateNotFound) {
		t.Fatalf("expected ErrDateNotFound on repeat delete, got %v", err)
	}
}

// A teacher cannot delete another teacher's marker.
func TestDeleteDateOwnerScoped(t *testing.T) {
	svc, class := setupDateTest(t)
	ctx := context.Background()

	marker, err := svc.AddDate(ctx, 1, dto.AddDateRequest{Date: "2026-03-10", ClassID: class.ID})
	if err != nil {
		t.Fatalf("add date: %v", err)
	}

	if err := svc.DeleteDate(ctx, 2, marker.ID); !errors.Is(err, apperrors.ErrDateNotFound) {
		t.Fatalf("expected ErrDateNotFound for foreign teacher, got %v", err)
	}

	// The marker must still be there for its owner
	dates, err := svc.ListDates(ctx, 1, class.ID)
	if err != nil {
		t.Fatalf("list dates: %v", err)
	}
	if len(dates) != 1 {
		t.Fatalf("expected marker to survive foreign delete, got %d markers", len(dates))
	}
}

func TestDeleteDateUnknownID(t *testing.T) {
	svc, _ := setupDateTest(t)

	if err := svc.DeleteDate(context.Background(), 1, 99); !errors.Is(err, apperrors.ErrDateNotFound) {
		t.Fatalf("expected ErrDateNotFound, got %v", err)
	}
}
