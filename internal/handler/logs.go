package handler

import (
	"errors"
	"net/http"

	"stockbook/internal/apierror"
	"stockbook/internal/dto"
	"stockbook/internal/middleware"
	"stockbook/internal/service"
	"stockbook/internal/store"

	"github.com/gin-gonic/gin"
)

type LogsHandler struct{ svc service.MovementService }

func NewLogsHandler(svc service.MovementService) *LogsHandler {
	return &LogsHandler{svc: svc}
}

func (h *LogsHandler) List(c *gin.Context) {
	logs, err := h.svc.List(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list movements"))
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *LogsHandler) Create(c *gin.Context) {
	var req dto.CreateLogRequest
	if !bindAndValidate(c, &req) {
		return
	}
	l, err := h.svc.Create(c.Request.Context(), middleware.GetIdentity(c), req)
	if errors.Is(err, store.ErrInsufficientStock) {
		c.JSON(http.StatusConflict, apierror.New("Insufficient stock for this sale"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to record movement"))
		return
	}
	c.JSON(http.StatusCreated, l)
}

func (h *LogsHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), middleware.GetIdentity(c), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to delete movement"))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *LogsHandler) MarkPaid(c *gin.Context) {
	l, err := h.svc.MarkPaid(c.Request.Context(), middleware.GetIdentity(c), c.Param("id"))
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New("Movement not found"))
	case errors.Is(err, service.ErrNotSale):
		c.JSON(http.StatusBadRequest, apierror.New("Only sales carry a payment status"))
	case err != nil:
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to update payment status"))
	default:
		c.JSON(http.StatusOK, l)
	}
}
