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

type ProductsHandler struct{ svc service.ProductService }

func NewProductsHandler(svc service.ProductService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

func (h *ProductsHandler) List(c *gin.Context) {
	products, err := h.svc.List(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list products"))
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	product, err := h.svc.Create(c.Request.Context(), middleware.GetIdentity(c), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to create product"))
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductsHandler) Update(c *gin.Context) {
	var req dto.UpdateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	product, err := h.svc.Update(c.Request.Context(), middleware.GetIdentity(c), c.Param("id"), req)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, apierror.New("Product not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to update product"))
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductsHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), middleware.GetIdentity(c), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to delete product"))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductsHandler) Balance(c *gin.Context) {
	resp, err := h.svc.Balance(c.Request.Context(), middleware.GetIdentity(c), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, apierror.New("Product not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to compute balance"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
