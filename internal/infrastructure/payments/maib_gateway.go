package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const (
	requestTimeout = 30 * time.Second

	payInfoEndpointPath = "/v1/pay-info/"
	refundEndpointPath  = "/v1/refund"

	// Currency the MAIB test environment reliably accepts. Other requested
	// currencies are coerced to it.
	supportedCurrency = "MDL"

	maxDescriptionLen = 255

	defaultClientIP = "127.0.0.1"
	defaultLanguage = "ro"
	defaultFailURL  = "http://localhost:3000/plata-esuata"

	// StatusUnknownSandbox is the sentinel status for pay-info 404s: the MAIB
	// sandbox returns 404 for valid payment ids, so callers should treat the
	// redirect/callback as the source of truth there.
	StatusUnknownSandbox = "unknown_sandbox"
)

// MaibGateway performs the MAIB eCommerce operations: create session, query
// status and refund. It shares one access token via the TokenManager.
type MaibGateway struct {
	cfg    Config
	tokens *TokenManager
	client *http.Client
}

func NewMaibGateway(cfg Config) *MaibGateway {
	client := &http.Client{Timeout: requestTimeout}
	return &MaibGateway{
		cfg:    cfg,
		tokens: NewTokenManager(cfg, client),
		client: client,
	}
}

// CreateSession normalizes the order data, obtains an access token and POSTs
// the payment session to MAIB.
func (g *MaibGateway) CreateSession(ctx context.Context, req SessionRequest) (*SessionResult, error) {
	payload := g.buildSessionPayload(req)

	status, body, err := g.doAuthenticated(ctx, http.MethodPost, g.payURL(), payload)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		msg := errorMessageFromBody(status, body)
		log.Printf("[maib][gateway] pay failed order_id=%s status=%d message=%s", req.OrderID, status, msg)
		return nil, &GatewayError{StatusCode: status, Message: msg}
	}

	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, &GatewayError{StatusCode: status, Message: "invalid pay response: " + err.Error()}
	}

	result, _ := data["result"].(map[string]any)
	payID := stringField(result, "payId")
	formURL := stringField(result, "payUrl", "paymentUrl")
	orderID := stringField(result, "orderId")
	if payID == "" {
		payID = stringField(data, "payId")
	}
	if formURL == "" {
		formURL = stringField(data, "payUrl")
	}
	if orderID == "" {
		orderID = req.OrderID
	}
	log.Printf("[maib][gateway] pay success order_id=%s pay_id=%s", orderID, payID)

	return &SessionResult{
		OrderID:     orderID,
		PayID:       payID,
		FormURL:     formURL,
		RedirectURL: req.RedirectURL,
		ExpiresAt:   stringField(data, "expiresAt"),
	}, nil
}

// buildSessionPayload applies the MAIB normalization policy. The returned map
// is exactly what goes on the wire: absent optional fields are omitted, never
// sent as null.
func (g *MaibGateway) buildSessionPayload(req SessionRequest) map[string]any {
	currency := req.Currency
	if currency != supportedCurrency {
		currency = supportedCurrency
	}

	description := req.Description
	if runes := []rune(description); len(runes) > maxDescriptionLen {
		description = string(runes[:maxDescriptionLen])
	}

	language := req.Language
	if language == "" {
		language = defaultLanguage
	}
	clientIP := req.ClientIP
	if clientIP == "" {
		clientIP = defaultClientIP
	}

	payload := map[string]any{
		"amount":      req.Amount,
		"currency":    currency,
		"description": description,
		"language":    language,
		"orderId":     req.OrderID,
		"clientName":  req.ClientName,
		"email":       req.Email,
		"clientIp":    clientIP,
	}

	if req.Phone != "" {
		payload["phone"] = req.Phone
	}
	// MAIB expects callBackUrl with a capital B.
	if req.CallbackURL != "" {
		payload["callBackUrl"] = req.CallbackURL
	}
	if req.RedirectURL != "" {
		payload["okUrl"] = req.RedirectURL
	}

	// failUrl is mandatory on the MAIB side: fall back to okUrl, then to a
	// local default.
	failURL := req.FailURL
	if failURL == "" {
		failURL = req.RedirectURL
	}
	if failURL == "" {
		failURL = defaultFailURL
	}
	payload["failUrl"] = failURL

	if items := normalizeItems(req.Items); len(items) > 0 {
		payload["items"] = items
	}

	// Callers never dictate the signature context.
	delete(payload, "signature")

	return payload
}

// normalizeItems drops items missing id, name or price and coerces quantity
// to a minimum of 1.
func normalizeItems(items []LineItem) []map[string]any {
	mapped := make([]map[string]any, 0, len(items))
	for _, it := range items {
		if it.ID == "" || it.Name == "" || it.Price == nil {
			continue
		}
		quantity := it.Quantity
		if quantity < 1 {
			quantity = 1
		}
		mapped = append(mapped, map[string]any{
			"id":       it.ID,
			"name":     it.Name,
			"price":    *it.Price,
			"quantity": quantity,
		})
	}
	return mapped
}

// QueryStatus fetches pay-info for a payment. A 404 is not an error in the
// sandbox; it maps to the StatusUnknownSandbox sentinel.
func (g *MaibGateway) QueryStatus(ctx context.Context, payID, orderID string) (*StatusResult, error) {
	url := g.cfg.baseURL() + payInfoEndpointPath + payID

	status, body, err := g.doAuthenticated(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	if status == http.StatusNotFound {
		log.Printf("[maib][gateway] pay-info 404 pay_id=%s (normal in sandbox)", payID)
		return &StatusResult{
			Ok:      true,
			PayID:   payID,
			Status:  StatusUnknownSandbox,
			OrderID: orderID,
			Raw: map[string]any{
				"warning":    "pay-info returned 404 in sandbox. Using redirect/callback as source of truth.",
				"statusCode": status,
			},
		}, nil
	}

	if status < 200 || status >= 300 {
		msg := errorMessageFromBody(status, body)
		log.Printf("[maib][gateway] pay-info failed pay_id=%s status=%d message=%s", payID, status, msg)
		return nil, &GatewayError{StatusCode: status, Message: msg}
	}

	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, &GatewayError{StatusCode: status, Message: "invalid pay-info response: " + err.Error()}
	}

	result, _ := data["result"].(map[string]any)
	statusValue := stringField(result, "status", "transactionStatus")
	orderIDValue := stringField(result, "orderId")
	if result == nil {
		statusValue = stringField(data, "status")
		orderIDValue = stringField(data, "orderId")
	}

	ok := true
	if v, exists := data["ok"].(bool); exists {
		ok = v
	}

	return &StatusResult{
		Ok:      ok,
		PayID:   payID,
		Status:  statusValue,
		OrderID: orderIDValue,
		Raw:     data,
	}, nil
}

// Refund refunds a payment. A nil amount requests a full refund; a non-nil
// one a partial refund of that amount. Not idempotent; the caller is
// responsible for not issuing it twice.
func (g *MaibGateway) Refund(ctx context.Context, payID string, amount *float64) (*RefundResult, error) {
	payload := map[string]any{"payId": payID}
	if amount != nil {
		payload["refundAmount"] = *amount
	}

	status, body, err := g.doAuthenticated(ctx, http.MethodPost, g.cfg.baseURL()+refundEndpointPath, payload)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		msg := errorMessageFromBody(status, body)
		log.Printf("[maib][gateway] refund failed pay_id=%s status=%d message=%s", payID, status, msg)
		return nil, &GatewayError{StatusCode: status, Message: msg}
	}

	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, &GatewayError{StatusCode: status, Message: "invalid refund response: " + err.Error()}
	}

	result, _ := data["result"].(map[string]any)

	ok := true
	if v, exists := data["ok"].(bool); exists {
		ok = v
	}

	res := &RefundResult{
		Ok:            ok,
		PayID:         stringField(result, "payId"),
		OrderID:       stringField(result, "orderId"),
		Status:        stringField(result, "status"),
		StatusCode:    stringField(result, "statusCode"),
		StatusMessage: stringField(result, "statusMessage"),
		RefundAmount:  floatField(result, "refundAmount"),
		Raw:           data,
	}
	if res.PayID == "" {
		res.PayID = payID
	}
	if res.RefundAmount == nil {
		res.RefundAmount = amount
	}
	log.Printf("[maib][gateway] refund success pay_id=%s status=%s", res.PayID, res.Status)
	return res, nil
}

// payURL builds the session endpoint, rewriting the legacy payment/session
// path to /v1/pay and normalizing slashes.
func (g *MaibGateway) payURL() string {
	path := g.cfg.PayEndpointPath
	if path == "" || strings.Contains(path, "payment/session") {
		path = "/v1/pay"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return g.cfg.baseURL() + path
}

func (g *MaibGateway) doAuthenticated(ctx context.Context, method, url string, payload any) (int, []byte, error) {
	token, err := g.tokens.AccessToken(ctx)
	if err != nil {
		return 0, nil, err
	}

	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, &NetworkError{Op: "encode request", Err: err}
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return 0, nil, &NetworkError{Op: "build request", Err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	// Some MAIB integrations require the project id header alongside the token.
	req.Header.Set("X-Project-Id", g.cfg.ProjectID)

	resp, err := g.client.Do(req)
	if err != nil {
		return 0, nil, wrapTransportError(method+" "+url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, wrapTransportError("read response", err)
	}
	return resp.StatusCode, body, nil
}

// stringField returns the first present key as a string, rendering JSON
// numbers without a trailing .0 like the gateway does.
func stringField(m map[string]any, keys ...string) string {
	for _, k := range keys {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			if t != "" {
				return t
			}
		case float64:
			if t == float64(int64(t)) {
				return fmt.Sprintf("%d", int64(t))
			}
			return fmt.Sprintf("%v", t)
		default:
			return fmt.Sprintf("%v", t)
		}
	}
	return ""
}

func floatField(m map[string]any, key string) *float64 {
	if v, ok := m[key].(float64); ok {
		return &v
	}
	return nil
}
