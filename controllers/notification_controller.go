package controllers

import (
	"context"
	"strconv"

	"local-market/models"

	"github.com/gin-gonic/gin"
)

type NotificationController struct{}

// GetNotifications godoc
// @Summary List notifications for a user
// @Tags Notifications
// @Produce json
// @Param user_id query int true "User ID"
// @Success 200 {array} models.Notification
// @Router /api/notifications [get]
func (ctrl *NotificationController) GetNotifications(c *gin.Context) {
	userID, err := strconv.Atoi(c.Query("user_id"))
	if err != nil || userID <= 0 {
		c.JSON(400, gin.H{"error": "user_id is required"})
		return
	}

	rows, err := models.DB.Query(context.Background(),
		`SELECT id, user_id, business_id, title, body, type, is_read, created_at
		 FROM notifications WHERE user_id = $1 ORDER BY created_at DESC LIMIT 100`, userID)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to fetch notifications"})
		return
	}
	defer rows.Close()

	notifications := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.BusinessID, &n.Title, &n.Body,
			&n.Type, &n.IsRead, &n.CreatedAt); err != nil {
			continue
		}
		notifications = append(notifications, n)
	}

	c.JSON(200, notifications)
}

// MarkNotificationRead godoc
// @Summary Mark a notification as read
// @Tags Notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Router /api/notifications/{id}/read [patch]
func (ctrl *NotificationController) MarkNotificationRead(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"error": "Invalid notification ID"})
		return
	}

	tag, err := models.DB.Exec(context.Background(),
		"UPDATE notifications SET is_read = true WHERE id = $1", id)
	if err != nil || tag.RowsAffected() == 0 {
		c.JSON(404, gin.H{"error": "Notification not found"})
		return
	}

	c.JSON(200, gin.H{"message": "Notification marked as read"})
}

// MarkAllNotificationsRead godoc
// @Summary Mark all notifications as read for a user
// @Tags Notifications
// @Produce json
// @Param user_id query int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/notifications/read-all [patch]
func (ctrl *NotificationController) MarkAllNotificationsRead(c *gin.Context) {
	userID, err := strconv.Atoi(c.Query("user_id"))
	if err != nil || userID <= 0 {
		c.JSON(400, gin.H{"error": "user_id is required"})
		return
	}

	_, err = models.DB.Exec(context.Background(),
		"UPDATE notifications SET is_read = true WHERE user_id = $1", userID)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to update notifications"})
		return
	}

	c.JSON(200, gin.H{"message": "All notifications marked as read"})
}
