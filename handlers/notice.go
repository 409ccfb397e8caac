package handlers

import (
	"net/http"

	noticeRepo "tutoria/database/repository/notice"
	"tutoria/middleware"

	"github.com/gin-gonic/gin"
)

// NoticeHandler serves the in-app notices delivered by the notice worker.
type NoticeHandler struct {
	Notices noticeRepo.NoticeRepository
}

// ListNoticesHandler handles GET /api/notices for the signed-in account.
func (h *NoticeHandler) ListNoticesHandler(c *gin.Context) {
	notices, err := h.Notices.ListByRecipient(c.GetString(middleware.CtxAccountID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notices)
}
