package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"gorm.io/gorm"

	"MindAlchemy/internal/models"
	"MindAlchemy/pkg/llm"
	"MindAlchemy/pkg/response"
)

type chatLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type chatRequest struct {
	Message   string        `json:"message" binding:"required"`
	SessionID uint          `json:"sessionId"`
	Location  *chatLocation `json:"location"`
}

type chatResponse struct {
	Response        string `json:"response"`
	SessionID       uint   `json:"sessionId"`
	IsCrisis        bool   `json:"isCrisis"`
	RiskLevel       string `json:"riskLevel"`
	Sentiment       string `json:"sentiment"`
	EmergencyNumber string `json:"emergencyNumber,omitempty"`
	CrisisAlertID   uint   `json:"crisisAlertId,omitempty"`
}

// handleChat runs one conversation turn. Crisis screening always runs
// before the LLM: a crisis manufactures the composed resources reply and
// never reaches the completion API.
func (h *Handlers) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	user := models.CurrentUser(c)

	var session *models.Session
	var err error
	if req.SessionID != 0 {
		session, err = models.GetSession(h.db, user.ID, req.SessionID)
		if err != nil {
			response.NotFound(c, "session not found")
			return
		}
	} else {
		session, err = models.CreateSession(h.db, user.ID)
		if err != nil {
			response.ServerError(c, "failed to create session")
			return
		}
	}

	var lat, lng *float64
	if req.Location != nil {
		lat, lng = &req.Location.Lat, &req.Location.Lng
	}

	eval, err := h.responder.EvaluateMessage(c.Request.Context(), h.db, user, req.Message, lat, lng)
	if err != nil {
		response.ServerError(c, "failed to process message")
		return
	}

	var reply, sentiment string
	if eval.IsCrisis {
		reply = eval.Response
		sentiment = "crisis"
	} else {
		history := make([]llm.Message, 0, len(session.Messages))
		for _, m := range session.Messages {
			history = append(history, llm.Message{Role: m.Role, Content: m.Content})
		}
		reply = h.llm.Chat(c.Request.Context(), history, req.Message, user.PrimaryConcern)
		sentiment = h.llm.Sentiment(c.Request.Context(), req.Message)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	session.Messages = append(session.Messages,
		models.ChatMessage{Role: "user", Content: req.Message, Timestamp: now},
		models.ChatMessage{Role: "assistant", Content: reply, Timestamp: now},
	)
	session.Sentiment = sentiment
	if err := models.UpdateSession(h.db, session); err != nil {
		response.ServerError(c, "failed to save session")
		return
	}

	response.Success(c, "ok", chatResponse{
		Response:        reply,
		SessionID:       session.ID,
		IsCrisis:        eval.IsCrisis,
		RiskLevel:       string(eval.RiskLevel),
		Sentiment:       sentiment,
		EmergencyNumber: eval.EmergencyNumber,
		CrisisAlertID:   eval.AlertID,
	})
}

func (h *Handlers) handleListSessions(c *gin.Context) {
	user := models.CurrentUser(c)
	sessions, err := models.GetSessionsByUser(h.db, user.ID)
	if err != nil {
		response.ServerError(c, "failed to list sessions")
		return
	}
	response.Success(c, "ok", sessions)
}

func (h *Handlers) handleGetSession(c *gin.Context) {
	user := models.CurrentUser(c)
	session, err := models.GetSession(h.db, user.ID, cast.ToUint(c.Param("id")))
	if err != nil {
		response.NotFound(c, "session not found")
		return
	}
	response.Success(c, "ok", session)
}

func (h *Handlers) handleDeleteSession(c *gin.Context) {
	user := models.CurrentUser(c)
	if err := models.DeleteSession(h.db, user.ID, cast.ToUint(c.Param("id"))); err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c, "session not found")
			return
		}
		response.ServerError(c, "failed to delete session")
		return
	}
	response.Success(c, "session deleted", nil)
}

type sessionSummaryResponse struct {
	SessionID uint   `json:"sessionId"`
	Summary   string `json:"summary"`
}

func (h *Handlers) handleSessionSummary(c *gin.Context) {
	user := models.CurrentUser(c)
	session, err := models.GetSession(h.db, user.ID, cast.ToUint(c.Param("id")))
	if err != nil {
		response.NotFound(c, "session not found")
		return
	}

	// The summary is generated once and kept on the row.
	if session.Summary == "" {
		history := make([]llm.Message, 0, len(session.Messages))
		for _, m := range session.Messages {
			history = append(history, llm.Message{Role: m.Role, Content: m.Content})
		}
		session.Summary = h.llm.SessionSummary(c.Request.Context(), history)
		if err := models.UpdateSession(h.db, session); err != nil {
			response.ServerError(c, "failed to save summary")
			return
		}
	}
	response.Success(c, "ok", sessionSummaryResponse{SessionID: session.ID, Summary: session.Summary})
}

func (h *Handlers) handleSearchSessions(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if len(query) < 2 {
		response.BadRequest(c, "search query must be at least 2 characters")
		return
	}
	user := models.CurrentUser(c)
	sessions, err := models.SearchSessions(h.db, user.ID, query)
	if err != nil {
		response.ServerError(c, "search failed")
		return
	}
	response.Success(c, "ok", sessions)
}
