package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"MindAlchemy/internal/crisis"
	"MindAlchemy/internal/models"
	"MindAlchemy/pkg/response"
)

type crisisResourcesResponse struct {
	Country     string                  `json:"country"`
	CountryName string                  `json:"countryName"`
	Emergency   string                  `json:"emergency"`
	Hotlines    []crisis.Hotline        `json:"hotlines"`
	Online      []crisis.OnlineResource `json:"onlineResources"`
}

// handleCrisisResources returns the helpline directory for the current
// user's country; an optional ?country= override is honored. The echoed
// code is the one actually served, so unknown codes come back as US.
func (h *Handlers) handleCrisisResources(c *gin.Context) {
	user := models.CurrentUser(c)
	code := strings.TrimSpace(c.Query("country"))
	if code == "" {
		code = user.Country
	}
	code = crisis.NormalizeCode(code)
	entry := crisis.Resolve(code)
	response.Success(c, "ok", crisisResourcesResponse{
		Country:     code,
		CountryName: crisis.CountryName(code),
		Emergency:   entry.Emergency,
		Hotlines:    entry.Hotlines,
		Online:      entry.OnlineResources,
	})
}

func (h *Handlers) handleCrisisCountries(c *gin.Context) {
	response.Success(c, "ok", crisis.Countries())
}
