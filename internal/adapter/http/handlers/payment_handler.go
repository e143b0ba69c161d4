package handlers

import (
	"errors"
	"log"
	"net/http"

	request "magazin_online/internal/adapter/http/dto/request"
	response "magazin_online/internal/adapter/http/dto/response"
	"magazin_online/internal/infrastructure/payments"
	"magazin_online/internal/usecase"
	"magazin_online/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// PaymentHandler handles HTTP requests for MAIB payments.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreateSession starts a MAIB payment session for an order.
func (h *PaymentHandler) CreateSession(c *gin.Context) {
	var payload request.PaymentSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[maib][handler] invalid session payload err=%v", err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	log.Printf("[maib][handler] session start order_id=%s", payload.OrderID)
	result, err := h.usecase.CreateSession(c.Request.Context(), payload.ToSessionRequest(c.ClientIP()))
	if err != nil {
		log.Printf("[maib][handler] session failed order_id=%s err=%v", payload.OrderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[maib][handler] session success order_id=%s pay_id=%s", result.OrderID, result.PayID)

	c.JSON(http.StatusOK, response.FromSessionResult(result))
}

// GetStatus checks a payment through pay-info.
func (h *PaymentHandler) GetStatus(c *gin.Context) {
	var payload request.PaymentStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.GetStatus(c.Request.Context(), payload.PayID, payload.OrderID)
	if err != nil {
		log.Printf("[maib][handler] status failed pay_id=%s err=%v", payload.PayID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStatusResult(result))
}

// Refund refunds a payment, fully or partially.
func (h *PaymentHandler) Refund(c *gin.Context) {
	var payload request.PaymentRefundRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	log.Printf("[maib][handler] refund start pay_id=%s", payload.PayID)
	result, err := h.usecase.Refund(c.Request.Context(), payload.PayID, payload.RefundAmount)
	if err != nil {
		log.Printf("[maib][handler] refund failed pay_id=%s err=%v", payload.PayID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRefundResult(result))
}

// mapPaymentError translates the gateway error taxonomy into HTTP responses:
// auth/gateway/transport problems are upstream failures (502), a timeout is
// 504, and anything else stays a 500.
func mapPaymentError(err error) *pkg.AppError {
	var authErr *payments.AuthError
	var gwErr *payments.GatewayError
	var timeoutErr *payments.TimeoutError
	var netErr *payments.NetworkError

	switch {
	case errors.Is(err, usecase.ErrInvalidSessionRequest), errors.Is(err, usecase.ErrInvalidPayID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.As(err, &authErr):
		return pkg.NewDomainError("GATEWAY_AUTH_FAILED", "Payment gateway authentication failed", err, http.StatusBadGateway)
	case errors.As(err, &gwErr):
		return pkg.NewDomainError("GATEWAY_REJECTED", gwErr.Message, err, http.StatusBadGateway)
	case errors.As(err, &timeoutErr):
		return pkg.NewDomainError("GATEWAY_TIMEOUT", "Payment gateway timed out", err, http.StatusGatewayTimeout)
	case errors.As(err, &netErr):
		return pkg.NewDomainError("GATEWAY_UNREACHABLE", "Payment gateway unreachable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
