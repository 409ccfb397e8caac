package handlers

import (
	"net/http"

	"tutoria/middleware"
	"tutoria/models"
	"tutoria/services/parent"
	"tutoria/services/staff"
	"tutoria/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves parent and staff sign-in, sign-out and registration.
type AuthHandler struct {
	ParentService parent.ParentService
	StaffService  staff.StaffService
}

// RegisterParentHandler handles POST /api/auth/parents/register.
func (h *AuthHandler) RegisterParentHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req models.ParentRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.ParentService.Register(req)
	if err != nil {
		logger.Error("Parent registration failed", zap.Error(err))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// SignInParentHandler handles POST /api/auth/parents/signin.
func (h *AuthHandler) SignInParentHandler(c *gin.Context) {
	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.ParentService.Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SignOutParentHandler handles POST /api/auth/parents/signout.
func (h *AuthHandler) SignOutParentHandler(c *gin.Context) {
	parentID := c.GetString(middleware.CtxAccountID)
	if err := h.ParentService.RevokeToken(parentID); err != nil {
		utils.GetLogger().Error("Parent sign-out failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// SignInStaffHandler handles POST /api/auth/staff/signin.
func (h *AuthHandler) SignInStaffHandler(c *gin.Context) {
	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.StaffService.Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SignOutStaffHandler handles POST /api/auth/staff/signout.
func (h *AuthHandler) SignOutStaffHandler(c *gin.Context) {
	staffID := c.GetString(middleware.CtxAccountID)
	if err := h.StaffService.RevokeToken(staffID); err != nil {
		utils.GetLogger().Error("Staff sign-out failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
