package entities

import (
	"encoding/json"
	"time"
)

// PaymentRecordStatus tracks what the shop knows about a MAIB payment.
//
// The MAIB sandbox cannot always answer pay-info queries, so callbacks and
// redirects drive most transitions.

type PaymentRecordStatus string

const (
	PaymentRecordStatusPending  PaymentRecordStatus = "pending"
	PaymentRecordStatusPaid     PaymentRecordStatus = "paid"
	PaymentRecordStatusFailed   PaymentRecordStatus = "failed"
	PaymentRecordStatusRefunded PaymentRecordStatus = "refunded"
)

// PaymentRecord is the payment session persisted by the shop backend.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// Gateway payload:
//   - GatewayPayloadRaw keeps the last raw MAIB payload (response or callback)
//     for traceability/audit.
//   - GatewayPayload is an optional parsed representation for debugging.

type PaymentRecord struct {
	ID            string              `json:"id"`
	OrderID       string              `json:"order_id"`
	PayID         string              `json:"pay_id"`
	Amount        float64             `json:"amount"`
	Currency      string              `json:"currency"`
	Status        PaymentRecordStatus `json:"status"`
	GatewayStatus string              `json:"gateway_status,omitempty"`
	FormURL       string              `json:"form_url,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`

	GatewayPayloadRaw json.RawMessage        `json:"gateway_payload_raw,omitempty"`
	GatewayPayload    map[string]interface{} `json:"gateway_payload,omitempty"`
}
