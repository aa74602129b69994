package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"gorm.io/gorm"

	"MindAlchemy/internal/models"
	"MindAlchemy/pkg/response"
)

type thoughtRecordRequest struct {
	Situation          string `json:"situation" binding:"required"`
	AutomaticThought   string `json:"automaticThought" binding:"required"`
	Emotion            string `json:"emotion"`
	Intensity          *int   `json:"intensity" binding:"omitempty,min=1,max=10"`
	EvidenceFor        string `json:"evidenceFor"`
	EvidenceAgainst    string `json:"evidenceAgainst"`
	AlternativeThought string `json:"alternativeThought"`
	Outcome            string `json:"outcome"`
}

func (h *Handlers) handleCreateThoughtRecord(c *gin.Context) {
	var req thoughtRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	user := models.CurrentUser(c)
	record := &models.ThoughtRecord{
		UserID:             user.ID,
		Situation:          req.Situation,
		AutomaticThought:   req.AutomaticThought,
		Emotion:            req.Emotion,
		Intensity:          req.Intensity,
		EvidenceFor:        req.EvidenceFor,
		EvidenceAgainst:    req.EvidenceAgainst,
		AlternativeThought: req.AlternativeThought,
		Outcome:            req.Outcome,
	}
	if err := models.CreateThoughtRecord(h.db, record); err != nil {
		response.ServerError(c, "failed to save thought record")
		return
	}
	response.Created(c, "thought record created", record)
}

func (h *Handlers) handleListThoughtRecords(c *gin.Context) {
	user := models.CurrentUser(c)
	records, err := models.GetThoughtRecords(h.db, user.ID)
	if err != nil {
		response.ServerError(c, "failed to list thought records")
		return
	}
	response.Success(c, "ok", records)
}

func (h *Handlers) handleGetThoughtRecord(c *gin.Context) {
	user := models.CurrentUser(c)
	record, err := models.GetThoughtRecord(h.db, user.ID, cast.ToUint(c.Param("id")))
	if err != nil {
		response.NotFound(c, "thought record not found")
		return
	}
	response.Success(c, "ok", record)
}

func (h *Handlers) handleUpdateThoughtRecord(c *gin.Context) {
	user := models.CurrentUser(c)
	record, err := models.GetThoughtRecord(h.db, user.ID, cast.ToUint(c.Param("id")))
	if err != nil {
		response.NotFound(c, "thought record not found")
		return
	}

	var req thoughtRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	record.Situation = req.Situation
	record.AutomaticThought = req.AutomaticThought
	record.Emotion = req.Emotion
	record.Intensity = req.Intensity
	record.EvidenceFor = req.EvidenceFor
	record.EvidenceAgainst = req.EvidenceAgainst
	record.AlternativeThought = req.AlternativeThought
	record.Outcome = req.Outcome
	if err := models.UpdateThoughtRecord(h.db, record); err != nil {
		response.ServerError(c, "failed to update thought record")
		return
	}
	response.Success(c, "thought record updated", record)
}

func (h *Handlers) handleDeleteThoughtRecord(c *gin.Context) {
	user := models.CurrentUser(c)
	if err := models.DeleteThoughtRecord(h.db, user.ID, cast.ToUint(c.Param("id"))); err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c, "thought record not found")
			return
		}
		response.ServerError(c, "failed to delete thought record")
		return
	}
	response.Success(c, "thought record deleted", nil)
}
