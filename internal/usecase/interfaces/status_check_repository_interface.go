package interfaces

import (
	"context"
	"magazin_online/internal/domain/entities"
)

// IStatusCheckRepository abstracts DynamoDB persistence for StatusCheck.

type IStatusCheckRepository interface {
	Create(ctx context.Context, s entities.StatusCheck) (entities.StatusCheck, error)
	List(ctx context.Context, limit int32) ([]entities.StatusCheck, error)
}
