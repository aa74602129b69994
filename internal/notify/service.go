package notify

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"MindAlchemy/internal/models"
	"MindAlchemy/pkg/logger"
)

type motivational struct {
	title   string
	message string
}

var motivationalMessages = []motivational{
	{"You're doing great! 🌟", "Take a moment to appreciate how far you've come. Every step forward matters."},
	{"Keep going! 💪", "Progress isn't always linear, but you're moving in the right direction."},
	{"You've got this! ✨", "Remember: small steps lead to big changes. You're stronger than you think."},
	{"Be kind to yourself today 💙", "Self-compassion is a superpower. You deserve your own kindness."},
	{"Celebrate your wins! 🎉", "No matter how small, every achievement is worth celebrating."},
	{"You're not alone 🤗", "Remember that seeking help and support is a sign of strength."},
	{"Take it one day at a time 🌱", "Growth happens gradually. Trust the process."},
	{"Your feelings are valid 💜", "Whatever you're experiencing right now is okay. You're doing your best."},
}

// Service generates scheduled reminder notifications. Sweep is meant
// to run once per minute; every rule matches against the current UTC
// minute so a notification fires at most once per scheduled slot.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Sweep checks every user's preferences against the given time and
// creates any notifications that are due. Per-user errors are logged
// and skipped so one bad row cannot stall the whole pass.
func (s *Service) Sweep(now time.Time) int {
	now = now.UTC()

	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		logger.Error("notification sweep failed to list users", zap.Error(err))
		return 0
	}

	sent := 0
	for i := range users {
		n, err := s.sweepUser(&users[i], now)
		if err != nil {
			logger.Error("notification sweep failed for user",
				zap.Uint("userId", users[i].ID),
				zap.Error(err))
			continue
		}
		sent += n
	}
	if sent > 0 {
		logger.Info("notification sweep completed", zap.Int("sent", sent))
	}
	return sent
}

func (s *Service) sweepUser(user *models.User, now time.Time) (int, error) {
	var prefs models.NotificationPreferences
	if err := s.db.Where("user_id = ?", user.ID).First(&prefs).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, err
	}

	sent := 0

	if prefs.DailyCheckinEnabled && minuteMatches(prefs.DailyCheckinTime, now) {
		logged, err := models.HasMoodLogToday(s.db, user.ID, now)
		if err != nil {
			return sent, err
		}
		if !logged {
			err := models.CreateNotification(s.db, &models.Notification{
				UserID:  user.ID,
				Type:    models.NotificationTypeDailyCheckin,
				Title:   "Good morning! ☀️",
				Message: "How are you feeling today? Take a moment to check in with yourself.",
			})
			if err != nil {
				return sent, err
			}
			sent++
		}
	}

	if prefs.MoodReminderEnabled && minuteMatches(prefs.MoodReminderTime, now) {
		logged, err := models.HasMoodLogToday(s.db, user.ID, now)
		if err != nil {
			return sent, err
		}
		if !logged {
			err := models.CreateNotification(s.db, &models.Notification{
				UserID:  user.ID,
				Type:    models.NotificationTypeMoodReminder,
				Title:   "Time to log your mood 📊",
				Message: "How was your day? Logging your mood helps track patterns and progress.",
			})
			if err != nil {
				return sent, err
			}
			sent++
		}
	}

	if prefs.MeditationReminderEnabled && minuteMatches(prefs.MeditationReminderTime, now) {
		err := models.CreateNotification(s.db, &models.Notification{
			UserID:  user.ID,
			Type:    models.NotificationTypeMeditation,
			Title:   "Time for mindfulness 🧘",
			Message: "Take a few minutes for yourself. A short meditation can make a big difference.",
		})
		if err != nil {
			return sent, err
		}
		sent++
	}

	// Weekly goal reminder, Mondays only, once per day.
	if prefs.GoalReminderEnabled && now.Weekday() == time.Monday {
		active, err := models.CountActiveGoals(s.db, user.ID)
		if err != nil {
			return sent, err
		}
		if active > 0 {
			already, err := models.HasNotificationToday(s.db, user.ID, models.NotificationTypeGoal, now)
			if err != nil {
				return sent, err
			}
			if !already {
				err := models.CreateNotification(s.db, &models.Notification{
					UserID:  user.ID,
					Type:    models.NotificationTypeGoal,
					Title:   fmt.Sprintf("You have %d active goal(s) 🎯", active),
					Message: "Check in on your goals this week. Progress, no matter how small, is still progress!",
				})
				if err != nil {
					return sent, err
				}
				sent++
			}
		}
	}

	if prefs.MotivationalMessagesEnabled && now.Hour() == 10 && now.Minute() == 0 {
		pick := motivationalMessages[rand.Intn(len(motivationalMessages))]
		err := models.CreateNotification(s.db, &models.Notification{
			UserID:  user.ID,
			Type:    models.NotificationTypeMotivational,
			Title:   pick.title,
			Message: pick.message,
		})
		if err != nil {
			return sent, err
		}
		sent++
	}

	return sent, nil
}

// minuteMatches reports whether now falls exactly on a HH:MM slot.
// Malformed times never match.
func minuteMatches(hhmm string, now time.Time) bool {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return false
	}
	return now.Hour() == t.Hour() && now.Minute() == t.Minute()
}
