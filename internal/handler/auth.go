package handler

import (
	"errors"
	"net/http"

	"stockbook/internal/apierror"
	"stockbook/internal/dto"
	"stockbook/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Register(c.Request.Context(), req)
	if errors.Is(err, service.ErrEmailTaken) {
		c.JSON(http.StatusConflict, apierror.New("An account with this email already exists"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Registration failed"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if errors.Is(err, service.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, apierror.New("Invalid credentials"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Login failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
