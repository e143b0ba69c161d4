package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"magazin_online/internal/adapter/http/handlers/mocks"
	"magazin_online/internal/domain/entities"
	"magazin_online/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestStatusCheckHandler_CreateStatusCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing client name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusCheckUseCase(ctrl)
		h := NewStatusCheckHandler(uc)

		r := gin.New()
		r.POST("/v1/status", h.CreateStatusCheck)

		w := postJSON(r, "/v1/status", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blank client name from usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusCheckUseCase(ctrl)
		h := NewStatusCheckHandler(uc)

		r := gin.New()
		r.POST("/v1/status", h.CreateStatusCheck)

		uc.EXPECT().Create(gomock.Any(), " ").Return(entities.StatusCheck{}, usecase.ErrInvalidClientName)

		w := postJSON(r, "/v1/status", `{"client_name":" "}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusCheckUseCase(ctrl)
		h := NewStatusCheckHandler(uc)

		r := gin.New()
		r.POST("/v1/status", h.CreateStatusCheck)

		uc.EXPECT().Create(gomock.Any(), "magazin").Return(entities.StatusCheck{
			ID: "sc-1", ClientName: "magazin", Timestamp: time.Now().UTC(),
		}, nil)

		w := postJSON(r, "/v1/status", `{"client_name":"magazin"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if resp["client_name"] != "magazin" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestStatusCheckHandler_ListStatusChecks(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusCheckUseCase(ctrl)
		h := NewStatusCheckHandler(uc)

		r := gin.New()
		r.GET("/v1/status", h.ListStatusChecks)

		uc.EXPECT().List(gomock.Any()).Return([]entities.StatusCheck{
			{ID: "sc-1", ClientName: "magazin"},
			{ID: "sc-2", ClientName: "admin"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/status", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if len(resp) != 2 {
			t.Fatalf("expected 2 checks, got %d", len(resp))
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusCheckUseCase(ctrl)
		h := NewStatusCheckHandler(uc)

		r := gin.New()
		r.GET("/v1/status", h.ListStatusChecks)

		uc.EXPECT().List(gomock.Any()).Return(nil, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/status", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
