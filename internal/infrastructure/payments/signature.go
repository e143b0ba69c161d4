package payments

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// GenerateSignature computes the MAIB payload signature:
// SHA256("k1=v1&k2=v2...&key=<signatureKey>") over the lexicographically
// sorted fields, hex lowercase. Any `signature` field in the input is
// excluded, and nil values render as empty strings. This must match the
// gateway's own algorithm byte for byte; key order and nil handling are part
// of the wire contract, not implementation detail.
func GenerateSignature(fields map[string]any, signatureKey string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == "signature" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+signatureValue(fields[k]))
	}

	full := strings.Join(parts, "&") + "&key=" + signatureKey
	sum := sha256.Sum256([]byte(full))
	return hex.EncodeToString(sum[:])
}

// VerifyCallbackSignature recomputes the signature over the callback fields
// and compares it with the transmitted one. Returns false when no signature
// was transmitted.
func VerifyCallbackSignature(fields map[string]string, signatureKey string) bool {
	got, ok := fields["signature"]
	if !ok || got == "" {
		return false
	}
	asAny := make(map[string]any, len(fields))
	for k, v := range fields {
		asAny[k] = v
	}
	want := GenerateSignature(asAny, signatureKey)
	return subtle.ConstantTimeCompare([]byte(strings.ToLower(got)), []byte(want)) == 1
}

func signatureValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
