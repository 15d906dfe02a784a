package handler

import (
	"errors"
	"io"
	"net/http"

	"stockbook/internal/apierror"
	"stockbook/internal/dto"
	"stockbook/internal/middleware"
	"stockbook/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type SyncHandler struct{ svc service.SyncService }

func NewSyncHandler(svc service.SyncService) *SyncHandler {
	return &SyncHandler{svc: svc}
}

func (h *SyncHandler) Export(c *gin.Context) {
	doc, err := h.svc.Export(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Export failed"))
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *SyncHandler) Import(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Could not read import body"))
		return
	}
	err = h.svc.Import(c.Request.Context(), middleware.GetIdentity(c), raw)
	if errors.Is(err, service.ErrInvalidImport) {
		c.JSON(http.StatusBadRequest, apierror.New("Import file is not a valid backup"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Import failed"))
		return
	}
	c.JSON(http.StatusOK, dto.SyncResponse{Status: "imported"})
}

func (h *SyncHandler) Push(c *gin.Context) {
	var req dto.SyncRequest
	if !bindAndValidate(c, &req) {
		return
	}
	state, err := h.svc.Push(c.Request.Context(), middleware.GetIdentity(c), req.AccessToken)
	if err != nil {
		// All push failures collapse into one caller-visible result — the
		// client cannot act differently on "unreachable" vs "rejected".
		log.Error().Err(err).Msg("cloud push failed")
		c.JSON(http.StatusBadGateway, apierror.New("Cloud push failed. Check your connection."))
		return
	}
	c.JSON(http.StatusOK, dto.SyncResponse{Status: "pushed", LastSync: state.LastSync})
}

func (h *SyncHandler) Pull(c *gin.Context) {
	var req dto.SyncRequest
	if !bindAndValidate(c, &req) {
		return
	}
	err := h.svc.Pull(c.Request.Context(), middleware.GetIdentity(c), req.AccessToken)
	if errors.Is(err, service.ErrNoRemoteData) {
		c.JSON(http.StatusNotFound, apierror.New("No cloud backup found"))
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("cloud pull failed")
		c.JSON(http.StatusBadGateway, apierror.New("Cloud pull failed. Check your connection."))
		return
	}
	c.JSON(http.StatusOK, dto.SyncResponse{Status: "pulled"})
}

func (h *SyncHandler) State(c *gin.Context) {
	state, err := h.svc.State(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to read sync state"))
		return
	}
	c.JSON(http.StatusOK, state)
}
