package handlers

import (
	"net/http"

	"tutoria/models"
	"tutoria/services/branch"
	"tutoria/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BranchHandler serves branch and classroom management endpoints.
type BranchHandler struct {
	BranchService branch.BranchService
}

// CreateBranchHandler handles POST /api/branches.
func (h *BranchHandler) CreateBranchHandler(c *gin.Context) {
	var req models.BranchCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.BranchService.CreateBranch(req)
	if err != nil {
		utils.GetLogger().Error("Branch creation failed", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateBranchHandler handles PUT /api/branches/:id.
func (h *BranchHandler) UpdateBranchHandler(c *gin.Context) {
	var req models.BranchUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.BranchService.UpdateBranch(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteBranchHandler handles DELETE /api/branches/:id.
func (h *BranchHandler) DeleteBranchHandler(c *gin.Context) {
	if err := h.BranchService.DeleteBranch(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Branch deleted"})
}

// GetBranchHandler handles GET /api/branches/:id.
func (h *BranchHandler) GetBranchHandler(c *gin.Context) {
	found, err := h.BranchService.GetBranchByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// ListBranchesHandler handles GET /api/branches.
func (h *BranchHandler) ListBranchesHandler(c *gin.Context) {
	branches, err := h.BranchService.ListBranches()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, branches)
}

// AddClassroomHandler handles POST /api/branches/:id/classrooms.
func (h *BranchHandler) AddClassroomHandler(c *gin.Context) {
	var req models.ClassroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	room, err := h.BranchService.AddClassroom(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

// RemoveClassroomHandler handles DELETE /api/branches/:id/classrooms/:roomId.
func (h *BranchHandler) RemoveClassroomHandler(c *gin.Context) {
	if err := h.BranchService.RemoveClassroom(c.Param("id"), c.Param("roomId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Classroom removed"})
}
