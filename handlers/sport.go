package handlers

import (
	"net/http"

	"courtside/models"
	"courtside/services/sport"
	"courtside/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SportHandler exposes the sport catalog: public reads plus admin CRUD and
// slot publication.
type SportHandler struct {
	Service sport.SportService
}

// NewSportHandler creates a new SportHandler.
func NewSportHandler(svc sport.SportService) *SportHandler {
	return &SportHandler{Service: svc}
}

// ListSportsHandler returns the active catalog.
func (h *SportHandler) ListSportsHandler(c *gin.Context) {
	sports, err := h.Service.List(c.Request.Context(), true)
	if err != nil {
		zap.L().Error("failed to list sports", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch sports", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sports": sports})
}

// GetSportHandler returns one catalog entry.
func (h *SportHandler) GetSportHandler(c *gin.Context) {
	s, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "sport not found", "")
		return
	}
	c.JSON(http.StatusOK, s)
}

// CreateSportHandler adds a sport to the catalog.
func (h *SportHandler) CreateSportHandler(c *gin.Context) {
	var s models.Sport
	if err := c.ShouldBindJSON(&s); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	created, err := h.Service.Create(c.Request.Context(), &s)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateSportHandler replaces a catalog entry.
func (h *SportHandler) UpdateSportHandler(c *gin.Context) {
	var s models.Sport
	if err := c.ShouldBindJSON(&s); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	s.ID = c.Param("id")
	updated, err := h.Service.Update(c.Request.Context(), &s)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.JSONError(c, http.StatusNotFound, "sport not found", "")
			return
		}
		zap.L().Error("failed to update sport", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update sport", "")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteSportHandler removes a sport and its published slots.
func (h *SportHandler) DeleteSportHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.JSONError(c, http.StatusNotFound, "sport not found", "")
			return
		}
		zap.L().Error("failed to delete sport", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete sport", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// GenerateSlotsHandler publishes hourly day slots for a sport.
func (h *SportHandler) GenerateSlotsHandler(c *gin.Context) {
	var req sport.GenerateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	count, err := h.Service.GenerateSlots(c.Request.Context(), req)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.JSONError(c, http.StatusNotFound, "sport not found", "")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"created": count})
}
