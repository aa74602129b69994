package handlers

import (
	"MindAlchemy/internal/crisis"
	"MindAlchemy/internal/models"
	"MindAlchemy/pkg/cache"
	"MindAlchemy/pkg/config"
	"MindAlchemy/pkg/llm"
	"MindAlchemy/pkg/metrics"
	"MindAlchemy/pkg/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handlers struct {
	db        *gorm.DB
	llm       llm.Chatter
	cache     cache.Cache
	responder *crisis.Responder
}

func NewHandlers(db *gorm.DB, chatter llm.Chatter, store cache.Cache, responder *crisis.Responder) *Handlers {
	return &Handlers{
		db:        db,
		llm:       chatter,
		cache:     store,
		responder: responder,
	}
}

func (h *Handlers) Register(engine *gin.Engine) {
	engine.Use(middleware.RequestID())
	engine.Use(metrics.Middleware())
	engine.GET("/metrics", metrics.Handler())

	r := engine.Group(config.GlobalConfig.APIPrefix)
	r.Use(middleware.InjectDB(h.db))

	h.registerSystemRoutes(r)

	h.registerAuthRoutes(r)
	h.registerChatRoutes(r)
	h.registerCrisisRoutes(r)
	h.registerMoodRoutes(r)
	h.registerJournalRoutes(r)
	h.registerCBTRoutes(r)
	h.registerGoalRoutes(r)
	h.registerSleepRoutes(r)
	h.registerNotificationRoutes(r)
	h.registerInsightRoutes(r)
}

func (h *Handlers) registerSystemRoutes(r *gin.RouterGroup) {
	system := r.Group("/system")
	{
		system.GET("/health", h.handleHealthCheck)
		system.GET("/rate-limiter", models.AuthRequired, h.handleGetRateLimiterConfig)
		system.PUT("/rate-limiter", models.AuthRequired, h.handleUpdateRateLimiterConfig)
	}
}

func (h *Handlers) registerAuthRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.handleRegister)
		auth.POST("/login", h.handleLogin)
		auth.GET("/me", models.AuthRequired, h.handleGetProfile)
		auth.PUT("/me", models.AuthRequired, h.handleUpdateProfile)
	}
}

func (h *Handlers) registerChatRoutes(r *gin.RouterGroup) {
	chat := r.Group("/chat", models.AuthRequired)
	{
		chat.POST("", middleware.RateLimiter(config.GlobalConfig.ChatRate), h.handleChat)
		chat.GET("/sessions", h.handleListSessions)
		chat.GET("/sessions/search", h.handleSearchSessions)
		chat.GET("/sessions/:id", h.handleGetSession)
		chat.DELETE("/sessions/:id", h.handleDeleteSession)
		chat.POST("/sessions/:id/summary", h.handleSessionSummary)
	}
}

func (h *Handlers) registerCrisisRoutes(r *gin.RouterGroup) {
	cr := r.Group("/crisis")
	{
		cr.GET("/resources", models.AuthRequired, h.handleCrisisResources)
		cr.GET("/countries", h.handleCrisisCountries)
	}
}

func (h *Handlers) registerMoodRoutes(r *gin.RouterGroup) {
	mood := r.Group("/mood", models.AuthRequired)
	{
		mood.POST("", h.handleCreateMoodLog)
		mood.GET("", h.handleListMoodLogs)
		mood.GET("/stats", h.handleMoodStats)
	}
}

func (h *Handlers) registerJournalRoutes(r *gin.RouterGroup) {
	journal := r.Group("/journal", models.AuthRequired)
	{
		journal.POST("", h.handleCreateJournalEntry)
		journal.GET("", h.handleListJournalEntries)
		journal.GET("/:id", h.handleGetJournalEntry)
		journal.PUT("/:id", h.handleUpdateJournalEntry)
		journal.DELETE("/:id", h.handleDeleteJournalEntry)
	}
}

func (h *Handlers) registerCBTRoutes(r *gin.RouterGroup) {
	cbt := r.Group("/cbt", models.AuthRequired)
	{
		cbt.POST("/thought-records", h.handleCreateThoughtRecord)
		cbt.GET("/thought-records", h.handleListThoughtRecords)
		cbt.GET("/thought-records/:id", h.handleGetThoughtRecord)
		cbt.PUT("/thought-records/:id", h.handleUpdateThoughtRecord)
		cbt.DELETE("/thought-records/:id", h.handleDeleteThoughtRecord)
	}
}

func (h *Handlers) registerGoalRoutes(r *gin.RouterGroup) {
	goals := r.Group("/goals", models.AuthRequired)
	{
		goals.POST("", h.handleCreateGoal)
		goals.GET("", h.handleListGoals)
		goals.GET("/:id", h.handleGetGoal)
		goals.PUT("/:id", h.handleUpdateGoal)
		goals.DELETE("/:id", h.handleDeleteGoal)
	}
}

func (h *Handlers) registerSleepRoutes(r *gin.RouterGroup) {
	sleep := r.Group("/sleep", models.AuthRequired)
	{
		sleep.POST("", h.handleCreateSleepLog)
		sleep.GET("", h.handleListSleepLogs)
		sleep.GET("/stats", h.handleSleepStats)
		sleep.DELETE("/:id", h.handleDeleteSleepLog)
	}
}

func (h *Handlers) registerNotificationRoutes(r *gin.RouterGroup) {
	n := r.Group("/notifications", models.AuthRequired)
	{
		n.GET("", h.handleListNotifications)
		n.GET("/unread-count", h.handleUnreadCount)
		n.PUT("/read-all", h.handleMarkAllRead)
		n.PUT("/:id/read", h.handleMarkRead)
		n.DELETE("/:id", h.handleDeleteNotification)
		n.GET("/preferences", h.handleGetPreferences)
		n.PUT("/preferences", h.handleUpdatePreferences)
	}
}

func (h *Handlers) registerInsightRoutes(r *gin.RouterGroup) {
	insights := r.Group("/insights", models.AuthRequired)
	{
		insights.GET("/patterns", h.handleInsightPatterns)
	}
}
