package payments

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// MAIB delivers callbacks in whichever encoding its side felt like: query
// parameters, a JSON body, or a form-encoded body. Extraction is a priority
// list of detectors plus alias tables, so new encodings and aliases stay
// additive.

var (
	payIDAliases   = []string{"payId", "pay_id"}
	orderIDAliases = []string{"orderId", "order_id"}
	statusAliases  = []string{"status", "Status"}

	successStatuses = map[string]struct{}{
		"SUCCESS": {}, "OK": {}, "APPROVED": {},
	}
	failureStatuses = map[string]struct{}{
		"FAILED": {}, "FAIL": {}, "CANCELLED": {}, "CANCEL": {}, "DECLINED": {},
	}
)

// CallbackData is the classified outcome of one gateway notification.
type CallbackData struct {
	PayID     string
	OrderID   string
	Status    string
	IsSuccess bool
	IsFailed  bool
	Raw       map[string]string
}

// HasRequiredFields reports whether the callback carried both identifiers.
// Missing identifiers are the one legitimate rejection case.
func (c CallbackData) HasRequiredFields() bool {
	return c.PayID != "" && c.OrderID != ""
}

// ExtractCallbackData pulls the callback fields out of whichever encoding is
// present. Query parameters win; an empty query falls through to a JSON body,
// then to a form-encoded body, then to an empty map. It never fails.
func ExtractCallbackData(query url.Values, body []byte) map[string]string {
	if len(query) > 0 {
		return flattenValues(query)
	}

	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err == nil {
		fields := make(map[string]string, len(parsed))
		for k, v := range parsed {
			if s := scalarString(v); s != "" {
				fields[k] = s
			}
		}
		return fields
	}

	if form, err := url.ParseQuery(string(body)); err == nil {
		return flattenValues(form)
	}

	return map[string]string{}
}

// StatusOutcome classifies a gateway status string. An unknown status sets
// neither flag.
func StatusOutcome(status string) (isSuccess, isFailed bool) {
	upper := strings.ToUpper(status)
	_, isSuccess = successStatuses[upper]
	_, isFailed = failureStatuses[upper]
	return isSuccess, isFailed
}

// ClassifyCallback extracts the canonical fields through the alias tables and
// classifies the payment outcome.
func ClassifyCallback(fields map[string]string) CallbackData {
	status := lookupAlias(fields, statusAliases)
	isSuccess, isFailed := StatusOutcome(status)

	return CallbackData{
		PayID:     lookupAlias(fields, payIDAliases),
		OrderID:   lookupAlias(fields, orderIDAliases),
		Status:    status,
		IsSuccess: isSuccess,
		IsFailed:  isFailed,
		Raw:       fields,
	}
}

func lookupAlias(fields map[string]string, aliases []string) string {
	for _, key := range aliases {
		if v := fields[key]; v != "" {
			return v
		}
	}
	return ""
}

func flattenValues(values url.Values) map[string]string {
	fields := make(map[string]string, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			fields[k] = vs[0]
		}
	}
	return fields
}

func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64, bool:
		return fmt.Sprintf("%v", t)
	default:
		// Nested objects and arrays are not callback fields.
		return ""
	}
}
