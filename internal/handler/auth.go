package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"MindAlchemy/internal/models"
	"MindAlchemy/pkg/response"
)

type registerRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	FullName       string `json:"fullName"`
	Country        string `json:"country"`
	Age            *int   `json:"age"`
	Gender         string `json:"gender"`
	Timezone       string `json:"timezone"`
	Language       string `json:"language"`
	PrimaryConcern string `json:"primaryConcern"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (h *Handlers) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if existing, _ := models.GetUserByEmail(h.db, email); existing != nil {
		response.Fail(c, "email already registered", nil)
		return
	}

	user := &models.User{
		Email:          email,
		FullName:       req.FullName,
		Country:        strings.ToUpper(strings.TrimSpace(req.Country)),
		Age:            req.Age,
		Gender:         req.Gender,
		Timezone:       req.Timezone,
		Language:       req.Language,
		PrimaryConcern: req.PrimaryConcern,
	}
	if err := user.SetPassword(req.Password); err != nil {
		response.ServerError(c, "failed to process password")
		return
	}
	if err := models.CreateUser(h.db, user); err != nil {
		response.ServerError(c, "failed to create user")
		return
	}

	token, err := models.CreateAccessToken(user.ID)
	if err != nil {
		response.ServerError(c, "failed to issue token")
		return
	}
	response.Created(c, "registered", authResponse{Token: token, User: user})
}

func (h *Handlers) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	user, err := models.GetUserByEmail(h.db, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil || !user.CheckPassword(req.Password) {
		response.Unauthorized(c, "invalid email or password")
		return
	}

	token, err := models.CreateAccessToken(user.ID)
	if err != nil {
		response.ServerError(c, "failed to issue token")
		return
	}
	response.Success(c, "logged in", authResponse{Token: token, User: user})
}

func (h *Handlers) handleGetProfile(c *gin.Context) {
	response.Success(c, "ok", models.CurrentUser(c))
}

type updateProfileRequest struct {
	FullName       *string `json:"fullName"`
	Country        *string `json:"country"`
	Age            *int    `json:"age"`
	Gender         *string `json:"gender"`
	Timezone       *string `json:"timezone"`
	Language       *string `json:"language"`
	PrimaryConcern *string `json:"primaryConcern"`
}

func (h *Handlers) handleUpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	user := models.CurrentUser(c)
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Country != nil {
		user.Country = strings.ToUpper(strings.TrimSpace(*req.Country))
	}
	if req.Age != nil {
		user.Age = req.Age
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.Timezone != nil {
		user.Timezone = *req.Timezone
	}
	if req.Language != nil {
		user.Language = *req.Language
	}
	if req.PrimaryConcern != nil {
		user.PrimaryConcern = *req.PrimaryConcern
	}

	if err := models.UpdateUser(h.db, user); err != nil {
		response.ServerError(c, "failed to update profile")
		return
	}
	response.Success(c, "profile updated", user)
}
