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

type CustomersHandler struct{ svc service.CustomerService }

func NewCustomersHandler(svc service.CustomerService) *CustomersHandler {
	return &CustomersHandler{svc: svc}
}

func (h *CustomersHandler) List(c *gin.Context) {
	customers, err := h.svc.List(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list customers"))
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomersHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	customer, err := h.svc.Create(c.Request.Context(), middleware.GetIdentity(c), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to create customer"))
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *CustomersHandler) Update(c *gin.Context) {
	var req dto.UpdateCustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	customer, err := h.svc.Update(c.Request.Context(), middleware.GetIdentity(c), c.Param("id"), req)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, apierror.New("Customer not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to update customer"))
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomersHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), middleware.GetIdentity(c), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to delete customer"))
		return
	}
	c.Status(http.StatusNoContent)
}
