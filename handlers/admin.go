package handlers

import (
	"net/http"

	"courtside/models"
	"courtside/services/admin"
	"courtside/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates the back-office surface: user listing, gallery
// content and contact enquiries.
type AdminHandler struct {
	Service admin.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

// GetAllUsersHandler returns all users with sensitive fields excluded.
func (h *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.Service.ListUsers(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to fetch all users", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch users", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// DeleteUserHandler removes an account.
func (h *AdminHandler) DeleteUserHandler(c *gin.Context) {
	if err := h.Service.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "user not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// AddGalleryItemHandler records gallery media metadata.
func (h *AdminHandler) AddGalleryItemHandler(c *gin.Context) {
	var item models.GalleryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	created, err := h.Service.AddGalleryItem(c.Request.Context(), &item)
	if err != nil {
		zap.L().Error("Failed to add gallery item", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to add gallery item", "")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListGalleryHandler returns all gallery items. Public.
func (h *AdminHandler) ListGalleryHandler(c *gin.Context) {
	items, err := h.Service.ListGallery(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to list gallery", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch gallery", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"gallery": items})
}

// DeleteGalleryItemHandler removes a gallery item.
func (h *AdminHandler) DeleteGalleryItemHandler(c *gin.Context) {
	if err := h.Service.DeleteGalleryItem(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "gallery item not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ContactHandler records a public contact-form enquiry.
func (h *AdminHandler) ContactHandler(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Phone   string `json:"phone"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	enquiry, err := h.Service.SubmitEnquiry(c.Request.Context(), &models.Enquiry{
		Name: req.Name, Email: req.Email, Phone: req.Phone, Message: req.Message,
	})
	if err != nil {
		zap.L().Error("Failed to record enquiry", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to submit enquiry", "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "received", "id": enquiry.ID})
}

// ListEnquiriesHandler returns all contact enquiries.
func (h *AdminHandler) ListEnquiriesHandler(c *gin.Context) {
	enquiries, err := h.Service.ListEnquiries(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to list enquiries", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch enquiries", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"enquiries": enquiries})
}

// DeleteEnquiryHandler removes an enquiry.
func (h *AdminHandler) DeleteEnquiryHandler(c *gin.Context) {
	if err := h.Service.DeleteEnquiry(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "enquiry not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
