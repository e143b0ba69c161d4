package handlers

import (
	"fmt"
	"log"
	"net/http"

	response "magazin_online/internal/adapter/http/dto/response"
	"magazin_online/internal/infrastructure/payments"
	"magazin_online/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CallbackHandler receives the server-to-server payment notifications from
// MAIB. Its contract is "always acknowledge": anything short of missing
// payment identifiers gets a 200, because MAIB retries deliveries that are
// not acknowledged and retry storms help nobody.

type CallbackHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewCallbackHandler(uc usecase.IPaymentUseCase) *CallbackHandler {
	return &CallbackHandler{usecase: uc}
}

// HandleCallback accepts the notification in whichever encoding MAIB used:
// query parameters, JSON body, or form-encoded body.
func (h *CallbackHandler) HandleCallback(c *gin.Context) {
	defer func() {
		if recovered := recover(); recovered != nil {
			log.Printf("[maib][callback] recovered from panic: %v", recovered)
			c.JSON(http.StatusOK, response.CallbackAckResponse{Ok: false, Error: fmt.Sprintf("%v", recovered)})
		}
	}()

	body, err := c.GetRawData()
	if err != nil {
		log.Printf("[maib][callback] body read failed err=%v", err)
		body = nil
	}

	fields := payments.ExtractCallbackData(c.Request.URL.Query(), body)
	data := h.usecase.HandleCallback(c.Request.Context(), fields)

	if !data.HasRequiredFields() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: payId or orderId"})
		return
	}

	c.JSON(http.StatusOK, response.FromCallbackData(data))
}
