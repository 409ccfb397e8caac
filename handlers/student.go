package handlers

import (
	"errors"
	"net/http"

	"tutoria/middleware"
	"tutoria/models"
	"tutoria/services/student"

	"github.com/gin-gonic/gin"
)

// StudentHandler serves parent-scoped student record endpoints.
type StudentHandler struct {
	StudentService student.StudentService
}

// CreateStudentHandler handles POST /api/students.
func (h *StudentHandler) CreateStudentHandler(c *gin.Context) {
	var req models.StudentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.StudentService.CreateStudent(c.GetString(middleware.CtxAccountID), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateStudentHandler handles PUT /api/students/:id.
func (h *StudentHandler) UpdateStudentHandler(c *gin.Context) {
	var req models.StudentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.StudentService.UpdateStudent(c.GetString(middleware.CtxAccountID), c.Param("id"), req)
	if err != nil {
		h.respond(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteStudentHandler handles DELETE /api/students/:id.
func (h *StudentHandler) DeleteStudentHandler(c *gin.Context) {
	if err := h.StudentService.DeleteStudent(c.GetString(middleware.CtxAccountID), c.Param("id")); err != nil {
		h.respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student removed"})
}

// GetStudentHandler handles GET /api/students/:id.
func (h *StudentHandler) GetStudentHandler(c *gin.Context) {
	found, err := h.StudentService.GetStudent(c.GetString(middleware.CtxAccountID), c.Param("id"))
	if err != nil {
		h.respond(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// ListStudentsHandler handles GET /api/students.
func (h *StudentHandler) ListStudentsHandler(c *gin.Context) {
	list, err := h.StudentService.ListStudents(c.GetString(middleware.CtxAccountID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *StudentHandler) respond(c *gin.Context, err error) {
	if errors.Is(err, student.ErrNotOwner) {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	respondError(c, err)
}
