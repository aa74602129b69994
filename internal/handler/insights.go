package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"MindAlchemy/internal/models"
	"MindAlchemy/pkg/response"
)

const insightsCacheTTL = time.Hour

// handleInsightPatterns digests the last 30 days of tracking data into a
// prompt for the LLM and returns its patterns summary. The result is
// cached per user for an hour since the analysis is expensive.
func (h *Handlers) handleInsightPatterns(c *gin.Context) {
	user := models.CurrentUser(c)
	ctx := c.Request.Context()

	cacheKey := fmt.Sprintf("insights:patterns:%d", user.ID)
	if cached, ok := h.cache.Get(ctx, cacheKey); ok {
		if text, ok := cached.(string); ok {
			response.Success(c, "ok", gin.H{"insights": text, "cached": true})
			return
		}
	}

	since := time.Now().UTC().AddDate(0, 0, -30)

	moods, err := models.GetMoodLogsSince(h.db, user.ID, since)
	if err != nil {
		response.ServerError(c, "failed to load mood data")
		return
	}
	entries, err := models.GetJournalEntriesSince(h.db, user.ID, since)
	if err != nil {
		response.ServerError(c, "failed to load journal data")
		return
	}
	sessions, err := models.GetSessionsByUser(h.db, user.ID)
	if err != nil {
		response.ServerError(c, "failed to load session data")
		return
	}
	sessionCount := 0
	for _, s := range sessions {
		if s.CreatedAt.After(since) {
			sessionCount++
		}
	}

	digest := buildInsightsDigest(moods, entries, sessionCount)
	text := h.llm.Insights(ctx, digest)

	// A failed cache write only costs a recompute next time.
	_ = h.cache.Set(ctx, cacheKey, text, insightsCacheTTL)
	response.Success(c, "ok", gin.H{"insights": text, "cached": false})
}

func buildInsightsDigest(moods []models.MoodLog, entries []models.JournalEntry, sessionCount int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "MOOD DATA (last 30 days, %d entries):\n", len(moods))
	limit := len(moods)
	if limit > 20 {
		limit = 20
	}
	for _, m := range moods[:limit] {
		notes := m.Notes
		if len(notes) > 100 {
			notes = notes[:100]
		}
		intensity := "-"
		if m.Intensity != nil {
			intensity = fmt.Sprintf("%d", *m.Intensity)
		}
		fmt.Fprintf(&b, "- %s: %s (intensity %s) %s\n",
			m.CreatedAt.Format("2006-01-02"), m.MoodType, intensity, notes)
	}

	fmt.Fprintf(&b, "\nJOURNAL ENTRIES (last 30 days, %d entries):\n", len(entries))
	limit = len(entries)
	if limit > 10 {
		limit = 10
	}
	for _, e := range entries[:limit] {
		preview := e.Content
		if len(preview) > 200 {
			preview = preview[:200]
		}
		fmt.Fprintf(&b, "- %s [%s]: %s\n",
			e.CreatedAt.Format("2006-01-02"), e.JournalType, preview)
	}

	fmt.Fprintf(&b, "\nCHAT SESSIONS: %d sessions in last 30 days\n", sessionCount)
	return b.String()
}
