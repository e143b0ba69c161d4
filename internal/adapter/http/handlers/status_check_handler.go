package handlers

import (
	"errors"
	"net/http"

	request "magazin_online/internal/adapter/http/dto/request"
	response "magazin_online/internal/adapter/http/dto/response"
	"magazin_online/internal/usecase"
	"magazin_online/pkg"

	"github.com/gin-gonic/gin"
)

// StatusCheckHandler exposes the storefront health-check collection.

type StatusCheckHandler struct {
	usecase usecase.IStatusCheckUseCase
}

func NewStatusCheckHandler(uc usecase.IStatusCheckUseCase) *StatusCheckHandler {
	return &StatusCheckHandler{usecase: uc}
}

func (h *StatusCheckHandler) CreateStatusCheck(c *gin.Context) {
	var payload request.StatusCheckCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	check, err := h.usecase.Create(c.Request.Context(), payload.ClientName)
	if err != nil {
		var appErr *pkg.AppError
		if errors.Is(err, usecase.ErrInvalidClientName) {
			appErr = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		} else {
			appErr = pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStatusCheck(check))
}

func (h *StatusCheckHandler) ListStatusChecks(c *gin.Context) {
	checks, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStatusChecks(checks))
}
