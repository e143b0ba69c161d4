package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"magazin_online/internal/domain/entities"
	"magazin_online/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidClientName = errors.New("invalid client name")

const statusCheckListLimit = 1000

// IStatusCheckUseCase is the trivial health-check collection kept for
// compatibility with the storefront.
type IStatusCheckUseCase interface {
	Create(ctx context.Context, clientName string) (entities.StatusCheck, error)
	List(ctx context.Context) ([]entities.StatusCheck, error)
}

type StatusCheckUseCase struct {
	repo interfaces.IStatusCheckRepository
}

var _ IStatusCheckUseCase = (*StatusCheckUseCase)(nil)

func NewStatusCheckUseCase(repo interfaces.IStatusCheckRepository) *StatusCheckUseCase {
	return &StatusCheckUseCase{repo: repo}
}

func (u *StatusCheckUseCase) Create(ctx context.Context, clientName string) (entities.StatusCheck, error) {
	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return entities.StatusCheck{}, ErrInvalidClientName
	}
	return u.repo.Create(ctx, entities.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	})
}

func (u *StatusCheckUseCase) List(ctx context.Context) ([]entities.StatusCheck, error) {
	return u.repo.List(ctx, statusCheckListLimit)
}
