package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"MindAlchemy/internal/models"
	"MindAlchemy/pkg/response"
)

type moodLogRequest struct {
	MoodType  string `json:"moodType" binding:"required"`
	Intensity *int   `json:"intensity" binding:"omitempty,min=1,max=10"`
	Notes     string `json:"notes"`
}

func (h *Handlers) handleCreateMoodLog(c *gin.Context) {
	var req moodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	user := models.CurrentUser(c)
	log := &models.MoodLog{
		UserID:    user.ID,
		MoodType:  req.MoodType,
		Intensity: req.Intensity,
		Notes:     req.Notes,
	}
	if err := models.CreateMoodLog(h.db, log); err != nil {
		response.ServerError(c, "failed to save mood log")
		return
	}
	response.Created(c, "mood logged", log)
}

func (h *Handlers) handleListMoodLogs(c *gin.Context) {
	user := models.CurrentUser(c)
	logs, err := models.GetMoodLogs(h.db, user.ID, cast.ToInt(c.Query("limit")))
	if err != nil {
		response.ServerError(c, "failed to list mood logs")
		return
	}
	response.Success(c, "ok", logs)
}

func (h *Handlers) handleMoodStats(c *gin.Context) {
	user := models.CurrentUser(c)
	stats, err := models.GetMoodStats(h.db, user.ID)
	if err != nil {
		response.ServerError(c, "failed to compute mood stats")
		return
	}
	response.Success(c, "ok", stats)
}
