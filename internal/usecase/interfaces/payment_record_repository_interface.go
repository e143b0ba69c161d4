package interfaces

import (
	"context"
	"magazin_online/internal/domain/entities"
)

// IPaymentRecordRepository abstracts DynamoDB persistence for PaymentRecord.
//
// The shop backend must be able to:
//   - record a session right after MAIB accepts it
//   - look records up by the merchant order id (callbacks carry it)
//   - rewrite a record when a callback or pay-info query settles its outcome

type IPaymentRecordRepository interface {
	Create(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error)
	GetByID(ctx context.Context, id string) (entities.PaymentRecord, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.PaymentRecord, error)
	Update(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error)
}
