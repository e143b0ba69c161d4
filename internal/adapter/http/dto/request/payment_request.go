package request

import "magazin_online/internal/infrastructure/payments"

// ItemRequest mirrors the storefront cart line. Price is a pointer so that an
// item sent without a price is dropped by the gateway normalization instead
// of being priced at zero.
type ItemRequest struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    *float64 `json:"price"`
	Quantity int      `json:"quantity"`
}

// PaymentSessionRequest is the storefront payload for starting a MAIB payment.
type PaymentSessionRequest struct {
	Amount           float64       `json:"amount" binding:"required,gt=0"`
	Currency         string        `json:"currency"`
	OrderID          string        `json:"orderId" binding:"required"`
	OrderDescription string        `json:"orderDescription" binding:"required"`
	CustomerEmail    string        `json:"customerEmail" binding:"required,email"`
	CustomerName     string        `json:"customerName" binding:"required"`
	CustomerPhone    string        `json:"customerPhone"`
	CallbackURL      string        `json:"callbackUrl" binding:"required"`
	RedirectURL      string        `json:"redirectUrl" binding:"required"`
	FailURL          string        `json:"failUrl"`
	Language         string        `json:"language"`
	Items            []ItemRequest `json:"items"`
	ClientIP         string        `json:"clientIp"`

	// Accepted for backwards compatibility with older storefront builds;
	// the backend always rebuilds the signature context itself.
	Signature string `json:"signature"`
}

// ToSessionRequest maps the transport payload onto the normalized gateway
// request. clientIp filled by the handler wins over the body value.
func (r PaymentSessionRequest) ToSessionRequest(clientIP string) payments.SessionRequest {
	if clientIP == "" {
		clientIP = r.ClientIP
	}

	items := make([]payments.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, payments.LineItem{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}

	return payments.SessionRequest{
		Amount:      r.Amount,
		Currency:    r.Currency,
		OrderID:     r.OrderID,
		Description: r.OrderDescription,
		Language:    r.Language,
		ClientName:  r.CustomerName,
		Email:       r.CustomerEmail,
		ClientIP:    clientIP,
		Phone:       r.CustomerPhone,
		CallbackURL: r.CallbackURL,
		RedirectURL: r.RedirectURL,
		FailURL:     r.FailURL,
		Items:       items,
		Signature:   r.Signature,
	}
}

// PaymentStatusRequest queries one payment by its MAIB id.
type PaymentStatusRequest struct {
	PayID   string `json:"payId" binding:"required"`
	OrderID string `json:"orderId"`
}

// PaymentRefundRequest refunds a payment. A missing refundAmount means a full
// refund per MAIB semantics.
type PaymentRefundRequest struct {
	PayID        string   `json:"payId" binding:"required"`
	RefundAmount *float64 `json:"refundAmount"`
}
