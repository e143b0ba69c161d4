package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"magazin_online/internal/domain/entities"
	"magazin_online/internal/infrastructure/payments"
	"magazin_online/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidSessionRequest = errors.New("invalid payment session request")
	ErrInvalidPayID          = errors.New("invalid pay id")
)

// IPaymentUseCase drives the MAIB payment lifecycle: create a session, query
// its status, refund it, and settle it from gateway callbacks.
type IPaymentUseCase interface {
	CreateSession(ctx context.Context, req payments.SessionRequest) (*payments.SessionResult, error)
	GetStatus(ctx context.Context, payID, orderID string) (*payments.StatusResult, error)
	Refund(ctx context.Context, payID string, amount *float64) (*payments.RefundResult, error)
	HandleCallback(ctx context.Context, fields map[string]string) payments.CallbackData
}

type PaymentUseCase struct {
	gateway      interfaces.IMaibGateway
	repo         interfaces.IPaymentRecordRepository
	signatureKey string
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(gateway interfaces.IMaibGateway, repo interfaces.IPaymentRecordRepository, signatureKey string) *PaymentUseCase {
	return &PaymentUseCase{gateway: gateway, repo: repo, signatureKey: signatureKey}
}

// CreateSession creates the MAIB session and records it. Persistence is
// best-effort: once MAIB accepted the session, returning the form URL to the
// caller matters more than our own bookkeeping.
func (u *PaymentUseCase) CreateSession(ctx context.Context, req payments.SessionRequest) (*payments.SessionResult, error) {
	req.OrderID = strings.TrimSpace(req.OrderID)
	if req.OrderID == "" || req.Amount <= 0 {
		log.Printf("[maib][usecase] invalid session request order_id=%q amount=%.2f", req.OrderID, req.Amount)
		return nil, ErrInvalidSessionRequest
	}
	if u.gateway == nil {
		return nil, errors.New("payment gateway not configured")
	}

	log.Printf("[maib][usecase] create-session start order_id=%s amount=%.2f", req.OrderID, req.Amount)
	result, err := u.gateway.CreateSession(ctx, req)
	if err != nil {
		log.Printf("[maib][usecase] create-session failed order_id=%s err=%v", req.OrderID, err)
		return nil, err
	}

	if u.repo != nil {
		now := time.Now().UTC()
		record := entities.PaymentRecord{
			ID:        uuid.NewString(),
			OrderID:   result.OrderID,
			PayID:     result.PayID,
			Amount:    req.Amount,
			Currency:  "MDL",
			Status:    entities.PaymentRecordStatusPending,
			FormURL:   result.FormURL,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if _, err := u.repo.Create(ctx, record); err != nil {
			log.Printf("[maib][usecase] record create failed order_id=%s pay_id=%s err=%v", result.OrderID, result.PayID, err)
		}
	}

	log.Printf("[maib][usecase] create-session success order_id=%s pay_id=%s", result.OrderID, result.PayID)
	return result, nil
}

// GetStatus queries pay-info and refreshes the stored record when the answer
// is authoritative (the sandbox sentinel is not).
func (u *PaymentUseCase) GetStatus(ctx context.Context, payID, orderID string) (*payments.StatusResult, error) {
	payID = strings.TrimSpace(payID)
	if payID == "" {
		return nil, ErrInvalidPayID
	}
	if u.gateway == nil {
		return nil, errors.New("payment gateway not configured")
	}

	result, err := u.gateway.QueryStatus(ctx, payID, orderID)
	if err != nil {
		log.Printf("[maib][usecase] status failed pay_id=%s err=%v", payID, err)
		return nil, err
	}

	if result.Status != payments.StatusUnknownSandbox {
		u.settleRecord(ctx, result.OrderID, result.Status, nil)
	}
	return result, nil
}

// Refund issues a full (amount == nil) or partial refund. Refunds are not
// idempotent upstream; callers must not retry blindly.
func (u *PaymentUseCase) Refund(ctx context.Context, payID string, amount *float64) (*payments.RefundResult, error) {
	payID = strings.TrimSpace(payID)
	if payID == "" {
		return nil, ErrInvalidPayID
	}
	if u.gateway == nil {
		return nil, errors.New("payment gateway not configured")
	}

	log.Printf("[maib][usecase] refund start pay_id=%s partial=%t", payID, amount != nil)
	result, err := u.gateway.Refund(ctx, payID, amount)
	if err != nil {
		log.Printf("[maib][usecase] refund failed pay_id=%s err=%v", payID, err)
		return nil, err
	}

	if result.OrderID != "" {
		u.markRefunded(ctx, result.OrderID, result.Status)
	}
	return result, nil
}

// HandleCallback classifies a gateway notification and settles the matching
// record. It never returns an error: the HTTP layer must acknowledge the
// gateway no matter what happened here.
func (u *PaymentUseCase) HandleCallback(ctx context.Context, fields map[string]string) payments.CallbackData {
	data := payments.ClassifyCallback(fields)

	if u.signatureKey != "" {
		if _, transmitted := fields["signature"]; transmitted && !payments.VerifyCallbackSignature(fields, u.signatureKey) {
			// Log only; rejecting would trigger gateway retry storms.
			log.Printf("[maib][usecase] callback signature mismatch order_id=%s pay_id=%s", data.OrderID, data.PayID)
		}
	}

	if !data.HasRequiredFields() {
		log.Printf("[maib][usecase] callback missing identifiers fields=%d", len(fields))
		return data
	}

	log.Printf("[maib][usecase] callback received order_id=%s pay_id=%s status=%s success=%t failed=%t",
		data.OrderID, data.PayID, data.Status, data.IsSuccess, data.IsFailed)

	raw, err := json.Marshal(fields)
	if err != nil {
		raw = nil
	}
	u.settleRecord(ctx, data.OrderID, data.Status, raw)
	return data
}

// settleRecord updates the latest record for an order with the gateway's
// verdict. Best-effort by contract.
func (u *PaymentUseCase) settleRecord(ctx context.Context, orderID, gatewayStatus string, rawPayload []byte) {
	if u.repo == nil || orderID == "" {
		return
	}

	record, ok := u.latestRecord(ctx, orderID)
	if !ok {
		return
	}

	isSuccess, isFailed := payments.StatusOutcome(gatewayStatus)
	switch {
	case isSuccess:
		record.Status = entities.PaymentRecordStatusPaid
	case isFailed:
		record.Status = entities.PaymentRecordStatusFailed
	}
	record.GatewayStatus = gatewayStatus
	if rawPayload != nil {
		record.GatewayPayloadRaw = rawPayload
		var parsed map[string]interface{}
		if err := json.Unmarshal(rawPayload, &parsed); err == nil {
			record.GatewayPayload = parsed
		}
	}
	record.UpdatedAt = time.Now().UTC()

	if _, err := u.repo.Update(ctx, record); err != nil {
		log.Printf("[maib][usecase] record update failed order_id=%s err=%v", orderID, err)
	}
}

func (u *PaymentUseCase) markRefunded(ctx context.Context, orderID, gatewayStatus string) {
	if u.repo == nil {
		return
	}
	record, ok := u.latestRecord(ctx, orderID)
	if !ok {
		return
	}
	record.Status = entities.PaymentRecordStatusRefunded
	record.GatewayStatus = gatewayStatus
	record.UpdatedAt = time.Now().UTC()
	if _, err := u.repo.Update(ctx, record); err != nil {
		log.Printf("[maib][usecase] refund record update failed order_id=%s err=%v", orderID, err)
	}
}

func (u *PaymentUseCase) latestRecord(ctx context.Context, orderID string) (entities.PaymentRecord, bool) {
	records, err := u.repo.ListByOrderID(ctx, orderID)
	if err != nil {
		log.Printf("[maib][usecase] record lookup failed order_id=%s err=%v", orderID, err)
		return entities.PaymentRecord{}, false
	}
	if len(records) == 0 {
		return entities.PaymentRecord{}, false
	}
	latest := records[0]
	for _, r := range records[1:] {
		if r.CreatedAt.After(latest.CreatedAt) {
			latest = r
		}
	}
	return latest, true
}
