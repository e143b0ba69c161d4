package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"magazin_online/internal/adapter/http/handlers/mocks"
	"magazin_online/internal/infrastructure/payments"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func callbackRouter(uc *mocks.MockIPaymentUseCase) *gin.Engine {
	h := NewCallbackHandler(uc)
	r := gin.New()
	r.POST("/v1/payment/maib/callback", h.HandleCallback)
	return r
}

func passthroughCallback(_ context.Context, fields map[string]string) payments.CallbackData {
	return payments.ClassifyCallback(fields)
}

func TestCallbackHandler_HandleCallback(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("query parameters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := callbackRouter(uc)

		uc.EXPECT().HandleCallback(gomock.Any(), gomock.Any()).DoAndReturn(passthroughCallback)

		req := httptest.NewRequest(http.MethodPost, "/v1/payment/maib/callback?payId=pay-1&orderId=ord-1&status=OK", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if resp["ok"] != true || resp["isSuccess"] != true {
			t.Fatalf("unexpected ack: %v", resp)
		}
	})

	t.Run("json body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := callbackRouter(uc)

		uc.EXPECT().HandleCallback(gomock.Any(), gomock.Any()).DoAndReturn(passthroughCallback)

		body := bytes.NewBufferString(`{"payId":"pay-2","orderId":"ord-2","status":"DECLINED"}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/payment/maib/callback", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if resp["isFailed"] != true || resp["status"] != "DECLINED" {
			t.Fatalf("unexpected ack: %v", resp)
		}
	})

	t.Run("form body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := callbackRouter(uc)

		uc.EXPECT().HandleCallback(gomock.Any(), gomock.Any()).DoAndReturn(passthroughCallback)

		body := bytes.NewBufferString("pay_id=pay-3&order_id=ord-3&status=SUCCESS")
		req := httptest.NewRequest(http.MethodPost, "/v1/payment/maib/callback", body)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("malformed body with identifying query still acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := callbackRouter(uc)

		uc.EXPECT().HandleCallback(gomock.Any(), gomock.Any()).DoAndReturn(passthroughCallback)

		body := bytes.NewBufferString("{not json; not a form")
		req := httptest.NewRequest(http.MethodPost, "/v1/payment/maib/callback?payId=pay-4&orderId=ord-4", body)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("missing identifiers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := callbackRouter(uc)

		uc.EXPECT().HandleCallback(gomock.Any(), gomock.Any()).DoAndReturn(passthroughCallback)

		req := httptest.NewRequest(http.MethodPost, "/v1/payment/maib/callback?status=OK", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("body read failure falls back to query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := callbackRouter(uc)

		uc.EXPECT().HandleCallback(gomock.Any(), gomock.Any()).DoAndReturn(passthroughCallback)

		req := httptest.NewRequest(http.MethodPost, "/v1/payment/maib/callback?payId=pay-5&orderId=ord-5&status=OK", nil)
		req.Body = failingReadCloser{}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("panic is converted to an acknowledgment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := callbackRouter(uc)

		uc.EXPECT().HandleCallback(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ map[string]string) payments.CallbackData {
				panic("settlement blew up")
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/payment/maib/callback?payId=pay-6&orderId=ord-6", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if resp["ok"] != false {
			t.Fatalf("expected ok=false ack, got %v", resp)
		}
	})
}
