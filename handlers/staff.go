package handlers

import (
	"net/http"

	"tutoria/models"
	"tutoria/services/staff"
	"tutoria/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StaffHandler serves staff account management endpoints (admin only).
type StaffHandler struct {
	StaffService staff.StaffService
}

// CreateStaffHandler handles POST /api/staff.
func (h *StaffHandler) CreateStaffHandler(c *gin.Context) {
	var req models.StaffCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.StaffService.CreateStaff(req)
	if err != nil {
		utils.GetLogger().Error("Staff creation failed", zap.Error(err))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateStaffHandler handles PUT /api/staff/:id.
func (h *StaffHandler) UpdateStaffHandler(c *gin.Context) {
	var req models.StaffUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.StaffService.UpdateStaff(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteStaffHandler handles DELETE /api/staff/:id.
func (h *StaffHandler) DeleteStaffHandler(c *gin.Context) {
	if err := h.StaffService.DeleteStaff(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted"})
}

// GetStaffHandler handles GET /api/staff/:id.
func (h *StaffHandler) GetStaffHandler(c *gin.Context) {
	found, err := h.StaffService.GetStaffByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// ListStaffHandler handles GET /api/staff with an optional ?role= filter.
func (h *StaffHandler) ListStaffHandler(c *gin.Context) {
	list, err := h.StaffService.ListStaff(c.Query("role"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListTutorsHandler handles GET /api/tutors, the assignment dialog dropdown.
func (h *StaffHandler) ListTutorsHandler(c *gin.Context) {
	tutors, err := h.StaffService.ListTutors()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tutors)
}
