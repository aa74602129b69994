package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"gorm.io/gorm"

	"MindAlchemy/internal/models"
	"MindAlchemy/pkg/response"
)

func (h *Handlers) handleListNotifications(c *gin.Context) {
	user := models.CurrentUser(c)
	unreadOnly := cast.ToBool(c.Query("unread"))
	items, err := models.GetNotifications(h.db, user.ID, unreadOnly, cast.ToInt(c.Query("limit")))
	if err != nil {
		response.ServerError(c, "failed to list notifications")
		return
	}
	response.Success(c, "ok", items)
}

func (h *Handlers) handleUnreadCount(c *gin.Context) {
	user := models.CurrentUser(c)
	count, err := models.CountUnreadNotifications(h.db, user.ID)
	if err != nil {
		response.ServerError(c, "failed to count notifications")
		return
	}
	response.Success(c, "ok", gin.H{"unreadCount": count})
}

func (h *Handlers) handleMarkRead(c *gin.Context) {
	user := models.CurrentUser(c)
	if err := models.MarkNotificationRead(h.db, user.ID, cast.ToUint(c.Param("id"))); err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c, "notification not found")
			return
		}
		response.ServerError(c, "failed to mark notification read")
		return
	}
	response.Success(c, "notification marked read", nil)
}

func (h *Handlers) handleMarkAllRead(c *gin.Context) {
	user := models.CurrentUser(c)
	updated, err := models.MarkAllNotificationsRead(h.db, user.ID)
	if err != nil {
		response.ServerError(c, "failed to mark notifications read")
		return
	}
	response.Success(c, "notifications marked read", gin.H{"updated": updated})
}

func (h *Handlers) handleDeleteNotification(c *gin.Context) {
	user := models.CurrentUser(c)
	if err := models.DeleteNotification(h.db, user.ID, cast.ToUint(c.Param("id"))); err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c, "notification not found")
			return
		}
		response.ServerError(c, "failed to delete notification")
		return
	}
	response.Success(c, "notification deleted", nil)
}

func (h *Handlers) handleGetPreferences(c *gin.Context) {
	user := models.CurrentUser(c)
	prefs, err := models.GetOrCreatePreferences(h.db, user.ID)
	if err != nil {
		response.ServerError(c, "failed to load preferences")
		return
	}
	response.Success(c, "ok", prefs)
}

type preferencesRequest struct {
	DailyCheckinEnabled         *bool   `json:"dailyCheckinEnabled"`
	DailyCheckinTime            *string `json:"dailyCheckinTime"`
	MoodReminderEnabled         *bool   `json:"moodReminderEnabled"`
	MoodReminderTime            *string `json:"moodReminderTime"`
	MeditationReminderEnabled   *bool   `json:"meditationReminderEnabled"`
	MeditationReminderTime      *string `json:"meditationReminderTime"`
	GoalReminderEnabled         *bool   `json:"goalReminderEnabled"`
	GoalReminderFrequency       *string `json:"goalReminderFrequency" binding:"omitempty,oneof=daily weekly monthly"`
	MotivationalMessagesEnabled *bool   `json:"motivationalMessagesEnabled"`
	MotivationalFrequency       *string `json:"motivationalFrequency" binding:"omitempty,oneof=daily weekly"`
	CrisisCheckinEnabled        *bool   `json:"crisisCheckinEnabled"`
	PushNotificationsEnabled    *bool   `json:"pushNotificationsEnabled"`
	EmailNotificationsEnabled   *bool   `json:"emailNotificationsEnabled"`
}

func (h *Handlers) handleUpdatePreferences(c *gin.Context) {
	var req preferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	user := models.CurrentUser(c)
	prefs, err := models.GetOrCreatePreferences(h.db, user.ID)
	if err != nil {
		response.ServerError(c, "failed to load preferences")
		return
	}

	if req.DailyCheckinEnabled != nil {
		prefs.DailyCheckinEnabled = *req.DailyCheckinEnabled
	}
	if req.DailyCheckinTime != nil {
		prefs.DailyCheckinTime = *req.DailyCheckinTime
	}
	if req.MoodReminderEnabled != nil {
		prefs.MoodReminderEnabled = *req.MoodReminderEnabled
	}
	if req.MoodReminderTime != nil {
		prefs.MoodReminderTime = *req.MoodReminderTime
	}
	if req.MeditationReminderEnabled != nil {
		prefs.MeditationReminderEnabled = *req.MeditationReminderEnabled
	}
	if req.MeditationReminderTime != nil {
		prefs.MeditationReminderTime = *req.MeditationReminderTime
	}
	if req.GoalReminderEnabled != nil {
		prefs.GoalReminderEnabled = *req.GoalReminderEnabled
	}
	if req.GoalReminderFrequency != nil {
		prefs.GoalReminderFrequency = *req.GoalReminderFrequency
	}
	if req.MotivationalMessagesEnabled != nil {
		prefs.MotivationalMessagesEnabled = *req.MotivationalMessagesEnabled
	}
	if req.MotivationalFrequency != nil {
		prefs.MotivationalFrequency = *req.MotivationalFrequency
	}
	if req.CrisisCheckinEnabled != nil {
		prefs.CrisisCheckinEnabled = *req.CrisisCheckinEnabled
	}
	if req.PushNotificationsEnabled != nil {
		prefs.PushNotificationsEnabled = *req.PushNotificationsEnabled
	}
	if req.EmailNotificationsEnabled != nil {
		prefs.EmailNotificationsEnabled = *req.EmailNotificationsEnabled
	}

	if err := models.UpdatePreferences(h.db, prefs); err != nil {
		response.ServerError(c, "failed to update preferences")
		return
	}
	response.Success(c, "preferences updated", prefs)
}
