package routes

import (
	"magazin_online/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments     = "/payment/maib"
	PathStatusChecks = "/status"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, callbackHandler *handlers.CallbackHandler, statusCheckHandler *handlers.StatusCheckHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/session", paymentHandler.CreateSession)
		payments.POST("/status", paymentHandler.GetStatus)
		payments.POST("/refund", paymentHandler.Refund)
		// Server-to-server notification target registered with MAIB.
		payments.POST("/callback", callbackHandler.HandleCallback)
	}

	status := rg.Group(PathStatusChecks)
	{
		status.POST("", statusCheckHandler.CreateStatusCheck)
		status.GET("", statusCheckHandler.ListStatusChecks)
	}
}
