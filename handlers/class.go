package handlers

import (
	"errors"
	"net/http"

	"tutoria/models"
	"tutoria/services/class"
	"tutoria/services/scheduling"
	"tutoria/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClassHandler serves class management and tutor assignment endpoints.
type ClassHandler struct {
	ClassService class.ClassService
}

// CreateClassHandler handles POST /api/classes.
func (h *ClassHandler) CreateClassHandler(c *gin.Context) {
	var req models.ClassCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.ClassService.CreateClass(req)
	if err != nil {
		utils.GetLogger().Error("Class creation failed", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateClassHandler handles PUT /api/classes/:id.
func (h *ClassHandler) UpdateClassHandler(c *gin.Context) {
	var req models.ClassUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.ClassService.UpdateClass(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteClassHandler handles DELETE /api/classes/:id.
func (h *ClassHandler) DeleteClassHandler(c *gin.Context) {
	if err := h.ClassService.DeleteClass(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Class deleted"})
}

// GetClassHandler handles GET /api/classes/:id.
func (h *ClassHandler) GetClassHandler(c *gin.Context) {
	found, err := h.ClassService.GetClassByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// ListClassesHandler handles GET /api/classes with an optional ?branchId= filter.
func (h *ClassHandler) ListClassesHandler(c *gin.Context) {
	list, err := h.ClassService.ListClasses(c.Query("branchId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// PreviewAssignmentHandler handles POST /api/classes/:id/assignment/preview.
// It runs the conflict checker for the tutor picked in the assignment dialog
// and returns the report without committing anything.
func (h *ClassHandler) PreviewAssignmentHandler(c *gin.Context) {
	var req models.AssignmentPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	preview, err := h.ClassService.PreviewAssignment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, scheduling.ErrStalePreview) {
			// A newer selection for the same dialog superseded this one.
			c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "stale": true})
			return
		}
		if errors.Is(err, class.ErrTutorRequired) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		h.respondScheduleFetch(c, err)
		return
	}
	c.JSON(http.StatusOK, preview)
}

// ReassignTutorHandler handles PUT /api/classes/:id/assignment. A non-empty
// conflict report rejects the commit with 409 unless the request forces it.
func (h *ClassHandler) ReassignTutorHandler(c *gin.Context) {
	var req models.ReassignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.ClassService.ReassignTutor(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		var conflict *class.ConflictError
		if errors.As(err, &conflict) {
			c.JSON(http.StatusConflict, gin.H{
				"error":     conflict.Error(),
				"conflicts": conflict.Report,
			})
			return
		}
		if errors.Is(err, class.ErrTutorRequired) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		h.respondScheduleFetch(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UnassignTutorHandler handles DELETE /api/classes/:id/assignment.
func (h *ClassHandler) UnassignTutorHandler(c *gin.Context) {
	updated, err := h.ClassService.UnassignTutor(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// respondScheduleFetch distinguishes a failed booking fetch, which refuses
// the operation, from ordinary lookup errors.
func (h *ClassHandler) respondScheduleFetch(c *gin.Context, err error) {
	if errors.Is(err, scheduling.ErrScheduleUnavailable) {
		utils.GetLogger().Error("Booked class fetch failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	respondError(c, err)
}
