package models

import (
	"strings"
	"time"

	"MindAlchemy/pkg/config"
	"MindAlchemy/pkg/middleware"
	"MindAlchemy/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const currentUserKey = "current_user"

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

// CreateAccessToken issues a signed JWT for the user.
func CreateAccessToken(userID uint) (string, error) {
	days := config.GlobalConfig.TokenExpireDays
	if days <= 0 {
		days = 1
	}
	claims := authClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(days) * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.GlobalConfig.JWTSecret))
}

func parseAccessToken(tokenString string) (uint, bool) {
	token, err := jwt.ParseWithClaims(tokenString, &authClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(config.GlobalConfig.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return 0, false
	}
	claims, ok := token.Claims.(*authClaims)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}

// AuthRequired validates the bearer token and loads the user onto the
// context. The gorm handle comes from the InjectDB middleware.
func AuthRequired(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if len(header) < 8 || !strings.EqualFold(header[:7], "Bearer ") {
		response.Unauthorized(c, "missing or invalid token")
		return
	}
	userID, ok := parseAccessToken(header[7:])
	if !ok {
		response.Unauthorized(c, "missing or invalid token")
		return
	}
	db := middleware.DBFrom(c)
	if db == nil {
		response.ServerError(c, "database unavailable")
		return
	}
	user, err := GetUserByID(db, userID)
	if err != nil {
		response.Unauthorized(c, "user not found")
		return
	}
	c.Set(currentUserKey, user)
	c.Next()
}

// CurrentUser returns the authenticated user, or nil outside AuthRequired.
func CurrentUser(c *gin.Context) *User {
	if v, ok := c.Get(currentUserKey); ok {
		if u, ok := v.(*User); ok {
			return u
		}
	}
	return nil
}
