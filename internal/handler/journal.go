package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"gorm.io/gorm"

	"MindAlchemy/internal/models"
	"MindAlchemy/pkg/response"
)

type journalEntryRequest struct {
	Title       string         `json:"title"`
	Content     string         `json:"content" binding:"required"`
	Mood        string         `json:"mood"`
	Tags        models.TagList `json:"tags"`
	JournalType string         `json:"journalType"`
}

func (h *Handlers) handleCreateJournalEntry(c *gin.Context) {
	var req journalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	user := models.CurrentUser(c)
	entry := &models.JournalEntry{
		UserID:      user.ID,
		Title:       req.Title,
		Content:     req.Content,
		Mood:        req.Mood,
		Tags:        req.Tags,
		JournalType: req.JournalType,
	}
	if err := models.CreateJournalEntry(h.db, entry); err != nil {
		response.ServerError(c, "failed to save entry")
		return
	}
	response.Created(c, "entry created", entry)
}

func (h *Handlers) handleListJournalEntries(c *gin.Context) {
	user := models.CurrentUser(c)
	entries, err := models.GetJournalEntries(h.db, user.ID, c.Query("type"), cast.ToInt(c.Query("limit")))
	if err != nil {
		response.ServerError(c, "failed to list entries")
		return
	}
	response.Success(c, "ok", entries)
}

func (h *Handlers) handleGetJournalEntry(c *gin.Context) {
	user := models.CurrentUser(c)
	entry, err := models.GetJournalEntry(h.db, user.ID, cast.ToUint(c.Param("id")))
	if err != nil {
		response.NotFound(c, "entry not found")
		return
	}
	response.Success(c, "ok", entry)
}

func (h *Handlers) handleUpdateJournalEntry(c *gin.Context) {
	user := models.CurrentUser(c)
	entry, err := models.GetJournalEntry(h.db, user.ID, cast.ToUint(c.Param("id")))
	if err != nil {
		response.NotFound(c, "entry not found")
		return
	}

	var req journalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	entry.Title = req.Title
	entry.Content = req.Content
	entry.Mood = req.Mood
	entry.Tags = req.Tags
	if req.JournalType != "" {
		entry.JournalType = req.JournalType
	}
	if err := models.UpdateJournalEntry(h.db, entry); err != nil {
		response.ServerError(c, "failed to update entry")
		return
	}
	response.Success(c, "entry updated", entry)
}

func (h *Handlers) handleDeleteJournalEntry(c *gin.Context) {
	user := models.CurrentUser(c)
	if err := models.DeleteJournalEntry(h.db, user.ID, cast.ToUint(c.Param("id"))); err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c, "entry not found")
			return
		}
		response.ServerError(c, "failed to delete entry")
		return
	}
	response.Success(c, "entry deleted", nil)
}
