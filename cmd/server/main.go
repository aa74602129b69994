package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"MindAlchemy/internal/crisis"
	handlers "MindAlchemy/internal/handler"
	"MindAlchemy/internal/models"
	"MindAlchemy/internal/notify"
	"MindAlchemy/pkg/cache"
	"MindAlchemy/pkg/config"
	"MindAlchemy/pkg/llm"
	"MindAlchemy/pkg/logger"
	"MindAlchemy/pkg/notification"
	"MindAlchemy/pkg/scheduler"
	"MindAlchemy/pkg/util"
)

func main() {
	if err := config.Load(); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.GlobalConfig

	if err := logger.Init(cfg.Log); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	db, err := util.OpenDatabase(cfg.DBDriver, cfg.DSN)
	if err != nil {
		logger.Error("failed to open database", zap.Error(err))
		os.Exit(1)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.CrisisAlert{},
		&models.MoodLog{},
		&models.JournalEntry{},
		&models.ThoughtRecord{},
		&models.Goal{},
		&models.SleepLog{},
		&models.Notification{},
		&models.NotificationPreferences{},
	); err != nil {
		logger.Error("failed to migrate database", zap.Error(err))
		os.Exit(1)
	}

	store, err := cache.NewCache(cfg.CacheConfig())
	if err != nil {
		logger.Error("failed to init cache", zap.Error(err))
		os.Exit(1)
	}
	defer store.Close()

	chatter := llm.NewService(cfg.LLMApiKey, cfg.LLMBaseURL, cfg.LLMModel)

	// No real dispatch client is wired in; the notifier logs crisis
	// alerts and reports "logged" until an integration exists.
	notifier := notification.NewEmergencyNotifier(nil)
	responder := crisis.NewResponder(notifier, time.Duration(cfg.NotifierTimeoutSeconds)*time.Second)

	var cron *scheduler.Cron
	if cfg.NotifySweepEnabled {
		sweeper := notify.NewService(db)
		cron = scheduler.NewCron(time.UTC)
		if _, err := cron.AddWithCtx("* * * * *", func(ctx context.Context) {
			sweeper.Sweep(time.Now())
		}); err != nil {
			logger.Error("failed to schedule notification sweep", zap.Error(err))
			os.Exit(1)
		}
		cron.Start()
		defer cron.Stop()
	}

	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())

	h := handlers.NewHandlers(db, chatter, store, responder)
	h.Register(engine)

	srv := &http.Server{Addr: cfg.Addr, Handler: engine}

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}
