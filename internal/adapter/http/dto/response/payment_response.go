package response

import "magazin_online/internal/infrastructure/payments"

type PaymentSessionResponse struct {
	OrderID     string `json:"orderId"`
	PayID       string `json:"payId"`
	FormURL     string `json:"formUrl"`
	RedirectURL string `json:"redirectUrl"`
	ExpiresAt   string `json:"expiresAt,omitempty"`
}

func FromSessionResult(r *payments.SessionResult) PaymentSessionResponse {
	return PaymentSessionResponse{
		OrderID:     r.OrderID,
		PayID:       r.PayID,
		FormURL:     r.FormURL,
		RedirectURL: r.RedirectURL,
		ExpiresAt:   r.ExpiresAt,
	}
}

type PaymentStatusResponse struct {
	Ok      bool           `json:"ok"`
	PayID   string         `json:"payId"`
	Status  string         `json:"status,omitempty"`
	OrderID string         `json:"orderId,omitempty"`
	Raw     map[string]any `json:"raw,omitempty"`
}

func FromStatusResult(r *payments.StatusResult) PaymentStatusResponse {
	return PaymentStatusResponse{
		Ok:      r.Ok,
		PayID:   r.PayID,
		Status:  r.Status,
		OrderID: r.OrderID,
		Raw:     r.Raw,
	}
}

type PaymentRefundResponse struct {
	Ok            bool           `json:"ok"`
	PayID         string         `json:"payId"`
	OrderID       string         `json:"orderId,omitempty"`
	Status        string         `json:"status,omitempty"`
	StatusCode    string         `json:"statusCode,omitempty"`
	StatusMessage string         `json:"statusMessage,omitempty"`
	RefundAmount  *float64       `json:"refundAmount,omitempty"`
	Raw           map[string]any `json:"raw,omitempty"`
}

func FromRefundResult(r *payments.RefundResult) PaymentRefundResponse {
	return PaymentRefundResponse{
		Ok:            r.Ok,
		PayID:         r.PayID,
		OrderID:       r.OrderID,
		Status:        r.Status,
		StatusCode:    r.StatusCode,
		StatusMessage: r.StatusMessage,
		RefundAmount:  r.RefundAmount,
		Raw:           r.Raw,
	}
}

// CallbackAckResponse is the acknowledgment body MAIB receives. It is emitted
// with HTTP 200 even when internal processing failed, so the gateway does not
// retry delivery.
type CallbackAckResponse struct {
	Ok        bool   `json:"ok"`
	Message   string `json:"message,omitempty"`
	PayID     string `json:"payId,omitempty"`
	OrderID   string `json:"orderId,omitempty"`
	Status    string `json:"status,omitempty"`
	IsSuccess bool   `json:"isSuccess"`
	IsFailed  bool   `json:"isFailed"`
	Error     string `json:"error,omitempty"`
}

func FromCallbackData(d payments.CallbackData) CallbackAckResponse {
	return CallbackAckResponse{
		Ok:        true,
		Message:   "Callback received",
		PayID:     d.PayID,
		OrderID:   d.OrderID,
		Status:    d.Status,
		IsSuccess: d.IsSuccess,
		IsFailed:  d.IsFailed,
	}
}
