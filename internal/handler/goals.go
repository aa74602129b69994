package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"gorm.io/gorm"

	"MindAlchemy/internal/models"
	"MindAlchemy/pkg/response"
)

type goalRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	TargetDate  *time.Time `json:"targetDate"`
	Status      string     `json:"status" binding:"omitempty,oneof=active completed archived"`
	Progress    *int       `json:"progress" binding:"omitempty,min=0,max=100"`
}

func (h *Handlers) handleCreateGoal(c *gin.Context) {
	var req goalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	user := models.CurrentUser(c)
	goal := &models.Goal{
		UserID:      user.ID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		TargetDate:  req.TargetDate,
		Status:      req.Status,
	}
	if req.Progress != nil {
		goal.Progress = *req.Progress
	}
	if err := models.CreateGoal(h.db, goal); err != nil {
		response.ServerError(c, "failed to save goal")
		return
	}
	response.Created(c, "goal created", goal)
}

func (h *Handlers) handleListGoals(c *gin.Context) {
	user := models.CurrentUser(c)
	goals, err := models.GetGoals(h.db, user.ID, c.Query("status"))
	if err != nil {
		response.ServerError(c, "failed to list goals")
		return
	}
	response.Success(c, "ok", goals)
}

func (h *Handlers) handleGetGoal(c *gin.Context) {
	user := models.CurrentUser(c)
	goal, err := models.GetGoal(h.db, user.ID, cast.ToUint(c.Param("id")))
	if err != nil {
		response.NotFound(c, "goal not found")
		return
	}
	response.Success(c, "ok", goal)
}

func (h *Handlers) handleUpdateGoal(c *gin.Context) {
	user := models.CurrentUser(c)
	goal, err := models.GetGoal(h.db, user.ID, cast.ToUint(c.Param("id")))
	if err != nil {
		response.NotFound(c, "goal not found")
		return
	}

	var req goalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	goal.Title = req.Title
	goal.Description = req.Description
	goal.Category = req.Category
	goal.TargetDate = req.TargetDate
	if req.Status != "" {
		goal.Status = req.Status
	}
	if req.Progress != nil {
		goal.Progress = *req.Progress
	}
	if err := models.UpdateGoal(h.db, goal); err != nil {
		response.ServerError(c, "failed to update goal")
		return
	}
	response.Success(c, "goal updated", goal)
}

func (h *Handlers) handleDeleteGoal(c *gin.Context) {
	user := models.CurrentUser(c)
	if err := models.DeleteGoal(h.db, user.ID, cast.ToUint(c.Param("id"))); err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c, "goal not found")
			return
		}
		response.ServerError(c, "failed to delete goal")
		return
	}
	response.Success(c, "goal deleted", nil)
}
