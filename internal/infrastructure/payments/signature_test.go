package payments

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func sha256hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func TestGenerateSignature(t *testing.T) {
	t.Run("sorted key order and key suffix", func(t *testing.T) {
		got := GenerateSignature(map[string]any{
			"orderId": "ord-1",
			"amount":  100.5,
			"payId":   "pay-1",
		}, "secret")

		want := sha256hex("amount=100.5&orderId=ord-1&payId=pay-1&key=secret")
		if got != want {
			t.Fatalf("expected %s, got %s", want, got)
		}
	})

	t.Run("signature field is excluded", func(t *testing.T) {
		withSig := GenerateSignature(map[string]any{
			"a":         "1",
			"signature": "deadbeef",
		}, "secret")
		withoutSig := GenerateSignature(map[string]any{"a": "1"}, "secret")
		if withSig != withoutSig {
			t.Fatalf("signature field must not contribute: %s != %s", withSig, withoutSig)
		}
	})

	t.Run("nil value renders as empty string", func(t *testing.T) {
		withNil := GenerateSignature(map[string]any{"a": "1", "b": nil}, "secret")
		withEmpty := GenerateSignature(map[string]any{"a": "1", "b": ""}, "secret")
		if withNil != withEmpty {
			t.Fatalf("nil and empty string must sign identically: %s != %s", withNil, withEmpty)
		}
	})

	t.Run("deterministic regardless of insertion order", func(t *testing.T) {
		first := map[string]any{}
		first["a"] = 1.0
		first["b"] = 2.0
		second := map[string]any{}
		second["b"] = 2.0
		second["a"] = 1.0

		if GenerateSignature(first, "k") != GenerateSignature(second, "k") {
			t.Fatal("expected identical signatures for permuted inputs")
		}
	})

	t.Run("integral floats render without decimals", func(t *testing.T) {
		got := GenerateSignature(map[string]any{"quantity": 2.0}, "k")
		want := sha256hex("quantity=2&key=k")
		if got != want {
			t.Fatalf("expected %s, got %s", want, got)
		}
	})
}

func TestVerifyCallbackSignature(t *testing.T) {
	fields := map[string]string{
		"payId":   "pay-1",
		"orderId": "ord-1",
		"status":  "OK",
	}
	fields["signature"] = GenerateSignature(map[string]any{
		"payId":   "pay-1",
		"orderId": "ord-1",
		"status":  "OK",

		// Excluded during generation, so safe to include here too.
		"signature": "ignored",
	}, "secret")

	if !VerifyCallbackSignature(fields, "secret") {
		t.Fatal("expected valid signature")
	}

	fields["signature"] = "0000"
	if VerifyCallbackSignature(fields, "secret") {
		t.Fatal("expected invalid signature")
	}

	delete(fields, "signature")
	if VerifyCallbackSignature(fields, "secret") {
		t.Fatal("expected false when no signature transmitted")
	}
}
