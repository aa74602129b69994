package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"gorm.io/gorm"

	"MindAlchemy/internal/models"
	"MindAlchemy/pkg/response"
)

type sleepLogRequest struct {
	SleepTime time.Time `json:"sleepTime" binding:"required"`
	WakeTime  time.Time `json:"wakeTime" binding:"required"`
	Quality   *int      `json:"quality" binding:"omitempty,min=1,max=10"`
	Notes     string    `json:"notes"`
}

func (h *Handlers) handleCreateSleepLog(c *gin.Context) {
	var req sleepLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if !req.WakeTime.After(req.SleepTime) {
		response.BadRequest(c, "wake time must be after sleep time")
		return
	}

	user := models.CurrentUser(c)
	log := &models.SleepLog{
		UserID:    user.ID,
		SleepTime: req.SleepTime,
		WakeTime:  req.WakeTime,
		Quality:   req.Quality,
		Notes:     req.Notes,
	}
	if err := models.CreateSleepLog(h.db, log); err != nil {
		response.ServerError(c, "failed to save sleep log")
		return
	}
	response.Created(c, "sleep logged", log)
}

func (h *Handlers) handleListSleepLogs(c *gin.Context) {
	user := models.CurrentUser(c)
	logs, err := models.GetSleepLogs(h.db, user.ID, cast.ToInt(c.Query("limit")))
	if err != nil {
		response.ServerError(c, "failed to list sleep logs")
		return
	}
	response.Success(c, "ok", logs)
}

func (h *Handlers) handleSleepStats(c *gin.Context) {
	user := models.CurrentUser(c)
	days := cast.ToInt(c.Query("days"))
	if days <= 0 {
		days = 30
	}
	since := time.Now().UTC().AddDate(0, 0, -days)
	stats, err := models.GetSleepStats(h.db, user.ID, since)
	if err != nil {
		response.ServerError(c, "failed to compute sleep stats")
		return
	}
	response.Success(c, "ok", stats)
}

func (h *Handlers) handleDeleteSleepLog(c *gin.Context) {
	user := models.CurrentUser(c)
	if err := models.DeleteSleepLog(h.db, user.ID, cast.ToUint(c.Param("id"))); err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c, "sleep log not found")
			return
		}
		response.ServerError(c, "failed to delete sleep log")
		return
	}
	response.Success(c, "sleep log deleted", nil)
}
