package handlers

import (
	"net/http"

	notificationRepo "medibook/database/repository/notification"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the stored notification feed.
type NotificationHandler struct {
	Repo notificationRepo.NotificationRepository
}

func NewNotificationHandler(repo notificationRepo.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{Repo: repo}
}

func (h *NotificationHandler) ListHandler(c *gin.Context) {
	notes, err := h.Repo.ListByRecipient(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list notifications", err.Error())
		return
	}
	c.JSON(http.StatusOK, notes)
}
