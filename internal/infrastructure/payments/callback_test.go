package payments

import (
	"net/url"
	"testing"
)

func TestExtractCallbackData(t *testing.T) {
	t.Run("query parameters win", func(t *testing.T) {
		query := url.Values{"payId": {"pay-q"}, "orderId": {"ord-q"}}
		body := []byte(`{"payId":"pay-b","orderId":"ord-b"}`)

		fields := ExtractCallbackData(query, body)
		if fields["payId"] != "pay-q" || fields["orderId"] != "ord-q" {
			t.Fatalf("expected query fields, got %v", fields)
		}
	})

	t.Run("json body", func(t *testing.T) {
		body := []byte(`{"payId":"pay-1","orderId":"ord-1","status":"OK","amount":100.5,"extra":{"nested":true}}`)

		fields := ExtractCallbackData(url.Values{}, body)
		if fields["payId"] != "pay-1" || fields["status"] != "OK" {
			t.Fatalf("unexpected fields: %v", fields)
		}
		if fields["amount"] != "100.5" {
			t.Errorf("expected numeric field flattened, got %q", fields["amount"])
		}
		if _, present := fields["extra"]; present {
			t.Error("nested objects must be dropped")
		}
	})

	t.Run("form body", func(t *testing.T) {
		body := []byte("pay_id=pay-2&order_id=ord-2&status=FAILED")

		fields := ExtractCallbackData(url.Values{}, body)
		if fields["pay_id"] != "pay-2" || fields["status"] != "FAILED" {
			t.Fatalf("unexpected fields: %v", fields)
		}
	})

	t.Run("garbage body yields empty map", func(t *testing.T) {
		fields := ExtractCallbackData(url.Values{}, []byte{0x00, 0x01, ';'})
		if fields == nil {
			t.Fatal("expected non-nil map")
		}
		if len(fields) != 0 {
			t.Fatalf("expected empty fields, got %v", fields)
		}
	})
}

func TestClassifyCallback(t *testing.T) {
	tests := []struct {
		name      string
		fields    map[string]string
		payID     string
		orderID   string
		isSuccess bool
		isFailed  bool
	}{
		{
			name:      "approved",
			fields:    map[string]string{"payId": "p1", "orderId": "o1", "status": "APPROVED"},
			payID:     "p1",
			orderID:   "o1",
			isSuccess: true,
		},
		{
			name:     "declined lowercase",
			fields:   map[string]string{"payId": "p2", "orderId": "o2", "status": "declined"},
			payID:    "p2",
			orderID:  "o2",
			isFailed: true,
		},
		{
			name:    "pending is neither",
			fields:  map[string]string{"payId": "p3", "orderId": "o3", "status": "PENDING"},
			payID:   "p3",
			orderID: "o3",
		},
		{
			name:      "snake case aliases",
			fields:    map[string]string{"pay_id": "p4", "order_id": "o4", "Status": "success"},
			payID:     "p4",
			orderID:   "o4",
			isSuccess: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := ClassifyCallback(tt.fields)
			if data.PayID != tt.payID || data.OrderID != tt.orderID {
				t.Errorf("unexpected identifiers: %+v", data)
			}
			if data.IsSuccess != tt.isSuccess || data.IsFailed != tt.isFailed {
				t.Errorf("unexpected classification: %+v", data)
			}
			if !data.HasRequiredFields() {
				t.Error("expected required fields present")
			}
		})
	}

	t.Run("missing order id", func(t *testing.T) {
		data := ClassifyCallback(map[string]string{"payId": "p5", "status": "OK"})
		if data.HasRequiredFields() {
			t.Error("expected required fields missing")
		}
	})
}

func TestStatusOutcome(t *testing.T) {
	for _, status := range []string{"SUCCESS", "OK", "APPROVED", "ok"} {
		if success, _ := StatusOutcome(status); !success {
			t.Errorf("expected %s to classify as success", status)
		}
	}
	for _, status := range []string{"FAILED", "FAIL", "CANCELLED", "CANCEL", "DECLINED"} {
		if _, failed := StatusOutcome(status); !failed {
			t.Errorf("expected %s to classify as failure", status)
		}
	}
	if success, failed := StatusOutcome("CREATED"); success || failed {
		t.Error("unknown status must set neither flag")
	}
}
