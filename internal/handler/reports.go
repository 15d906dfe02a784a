package handler

import (
	"net/http"

	"stockbook/internal/apierror"
	"stockbook/internal/dto"
	"stockbook/internal/middleware"
	"stockbook/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

func (h *ReportsHandler) Summary(c *gin.Context) {
	summary, err := h.svc.Summary(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to build summary"))
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ReportsHandler) LowStock(c *gin.Context) {
	low, err := h.svc.LowStock(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to compute low stock"))
		return
	}
	if low == nil {
		low = []dto.ProductBalanceResponse{}
	}
	c.JSON(http.StatusOK, low)
}
