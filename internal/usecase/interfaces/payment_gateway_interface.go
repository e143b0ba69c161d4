package interfaces

import (
	"context"

	"magazin_online/internal/infrastructure/payments"
)

// IMaibGateway abstracts the MAIB eCommerce client so the usecase layer can
// be tested without the remote gateway.
type IMaibGateway interface {
	CreateSession(ctx context.Context, req payments.SessionRequest) (*payments.SessionResult, error)
	QueryStatus(ctx context.Context, payID, orderID string) (*payments.StatusResult, error)
	Refund(ctx context.Context, payID string, amount *float64) (*payments.RefundResult, error)
}
