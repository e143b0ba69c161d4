package payments

// SessionRequest is the normalized order data for creating a payment session.
//
// The gateway client applies the MAIB normalization policy on top of it
// (item filtering, currency coercion, description truncation, url fallbacks)
// before anything goes on the wire.
type SessionRequest struct {
	Amount      float64
	Currency    string
	OrderID     string
	Description string
	Language    string
	ClientName  string
	Email       string
	ClientIP    string
	Phone       string
	CallbackURL string
	RedirectURL string
	FailURL     string
	Items       []LineItem

	// Signature is accepted from callers for compatibility but never
	// forwarded; the server owns the outbound signature context.
	Signature string
}

// LineItem is one order line. Price is a pointer so that an absent price can
// be told apart from a zero one: items missing id, name or price are dropped
// silently, never sent upstream.
type LineItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    *float64 `json:"price"`
	Quantity int      `json:"quantity"`
}

// SessionResult is the outcome of a successful create-session call.
type SessionResult struct {
	OrderID     string
	PayID       string
	FormURL     string
	RedirectURL string
	ExpiresAt   string
}

// StatusResult is recomputed on every status query; nothing is cached.
type StatusResult struct {
	Ok      bool
	PayID   string
	Status  string
	OrderID string
	Raw     map[string]any
}

// RefundResult mirrors the flat MAIB refund response shape.
type RefundResult struct {
	Ok            bool
	PayID         string
	OrderID       string
	Status        string
	StatusCode    string
	StatusMessage string
	RefundAmount  *float64
	Raw           map[string]any
}
