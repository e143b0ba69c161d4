package usecase

import (
	"context"
	"errors"
	"testing"

	"magazin_online/internal/domain/entities"
	mock_interfaces "magazin_online/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestStatusCheckUseCase_Create(t *testing.T) {
	t.Run("empty client name", func(t *testing.T) {
		uc := NewStatusCheckUseCase(nil)
		_, err := uc.Create(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidClientName) {
			t.Fatalf("expected ErrInvalidClientName, got %v", err)
		}
	})

	t.Run("creates with generated id and timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIStatusCheckRepository(ctrl)
		uc := NewStatusCheckUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.StatusCheck) (entities.StatusCheck, error) {
				if s.ID == "" {
					t.Error("expected generated id")
				}
				if s.ClientName != "magazin" {
					t.Errorf("expected trimmed client name, got %q", s.ClientName)
				}
				if s.Timestamp.IsZero() {
					t.Error("expected timestamp set")
				}
				return s, nil
			})

		created, err := uc.Create(context.Background(), "  magazin  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ClientName != "magazin" {
			t.Fatalf("unexpected client name: %q", created.ClientName)
		}
	})
}

func TestStatusCheckUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_interfaces.NewMockIStatusCheckRepository(ctrl)
	uc := NewStatusCheckUseCase(repo)

	repo.EXPECT().List(gomock.Any(), int32(statusCheckListLimit)).Return([]entities.StatusCheck{
		{ID: "sc-1", ClientName: "magazin"},
	}, nil)

	checks, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(checks) != 1 || checks[0].ID != "sc-1" {
		t.Fatalf("unexpected checks: %+v", checks)
	}
}
