package handlers

import (
	"errors"
	"net/http"

	"tutoria/middleware"
	"tutoria/models"
	"tutoria/services/enrollment"

	"github.com/gin-gonic/gin"
)

// EnrollmentHandler serves enrollment endpoints for parents and staff.
type EnrollmentHandler struct {
	EnrollmentService enrollment.EnrollmentService
}

// EnrollHandler handles POST /api/enrollments.
func (h *EnrollmentHandler) EnrollHandler(c *gin.Context) {
	var req models.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.EnrollmentService.Enroll(c.GetString(middleware.CtxAccountID), req)
	if err != nil {
		switch {
		case errors.Is(err, enrollment.ErrAlreadyEnrolled), errors.Is(err, enrollment.ErrClassFull):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, enrollment.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			respondError(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, created)
}

// WithdrawHandler handles DELETE /api/enrollments/:id.
func (h *EnrollmentHandler) WithdrawHandler(c *gin.Context) {
	if err := h.EnrollmentService.Withdraw(c.GetString(middleware.CtxAccountID), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Enrollment withdrawn"})
}

// ListMyEnrollmentsHandler handles GET /api/enrollments.
func (h *EnrollmentHandler) ListMyEnrollmentsHandler(c *gin.Context) {
	list, err := h.EnrollmentService.ListByParent(c.GetString(middleware.CtxAccountID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListClassRosterHandler handles GET /api/classes/:id/roster (staff only).
func (h *EnrollmentHandler) ListClassRosterHandler(c *gin.Context) {
	list, err := h.EnrollmentService.ListByClass(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
