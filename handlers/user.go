package handlers

import (
	"errors"
	"net/http"

	"courtside/services/user"
	"courtside/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes account registration and login.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// RegisterHandler creates an account and returns a bearer token.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	resp, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			utils.JSONError(c, http.StatusConflict, err.Error(), "")
			return
		}
		zap.L().Error("registration failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to register", "")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler authenticates credentials and returns a bearer token.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	resp, err := h.Service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, err.Error(), "")
			return
		}
		zap.L().Error("login failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to log in", "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ProfileHandler returns the authenticated user's account.
func (h *UserHandler) ProfileHandler(c *gin.Context) {
	u, err := h.Service.GetByID(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "user not found", "")
		return
	}
	c.JSON(http.StatusOK, u)
}

// LogoutHandler revokes the caller's current token.
func (h *UserHandler) LogoutHandler(c *gin.Context) {
	if err := h.Service.RevokeToken(c.Request.Context(), c.GetString("userID")); err != nil {
		zap.L().Error("logout failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to log out", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}
