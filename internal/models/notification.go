package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	NotificationTypeDailyCheckin  = "daily_checkin"
	NotificationTypeMoodReminder  = "mood_reminder"
	NotificationTypeMeditation    = "meditation"
	NotificationTypeGoal          = "goal"
	NotificationTypeMotivational  = "motivational"
	NotificationTypeCrisisCheckin = "crisis_checkin"
)

type Notification struct {
	ID      uint       `json:"id" gorm:"primaryKey"`
	UserID  uint       `json:"userId" gorm:"index;not null"`
	User    User       `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Type    string     `json:"type" gorm:"size:32;not null"`
	Title   string     `json:"title" gorm:"size:255;not null"`
	Message string     `json:"message" gorm:"type:text;not null"`
	Read    bool       `json:"read" gorm:"default:false"`
	SentAt  time.Time  `json:"sentAt" gorm:"autoCreateTime"`
	ReadAt  *time.Time `json:"readAt,omitempty"`
}

type NotificationPreferences struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"userId" gorm:"uniqueIndex;not null"`
	User   User `json:"-" gorm:"constraint:OnDelete:CASCADE"`

	DailyCheckinEnabled bool   `json:"dailyCheckinEnabled" gorm:"default:true"`
	DailyCheckinTime    string `json:"dailyCheckinTime" gorm:"size:5;default:09:00"` // HH:MM

	MoodReminderEnabled bool   `json:"moodReminderEnabled" gorm:"default:true"`
	MoodReminderTime    string `json:"moodReminderTime" gorm:"size:5;default:20:00"`

	MeditationReminderEnabled bool   `json:"meditationReminderEnabled" gorm:"default:true"`
	MeditationReminderTime    string `json:"meditationReminderTime" gorm:"size:5;default:19:00"`

	GoalReminderEnabled   bool   `json:"goalReminderEnabled" gorm:"default:true"`
	GoalReminderFrequency string `json:"goalReminderFrequency" gorm:"size:16;default:weekly"` // daily, weekly, monthly

	MotivationalMessagesEnabled bool   `json:"motivationalMessagesEnabled" gorm:"default:true"`
	MotivationalFrequency       string `json:"motivationalFrequency" gorm:"size:16;default:daily"` // daily, weekly

	CrisisCheckinEnabled bool `json:"crisisCheckinEnabled" gorm:"default:true"`

	PushNotificationsEnabled  bool `json:"pushNotificationsEnabled" gorm:"default:true"`
	EmailNotificationsEnabled bool `json:"emailNotificationsEnabled" gorm:"default:false"`

	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func CreateNotification(db *gorm.DB, n *Notification) error {
	return db.Create(n).Error
}

func GetNotifications(db *gorm.DB, userID uint, unreadOnly bool, limit int) ([]Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	q := db.Where("user_id = ?", userID)
	if unreadOnly {
		q = q.Where("read = ?", false)
	}
	var items []Notification
	if err := q.Order("sent_at DESC").Limit(limit).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func CountUnreadNotifications(db *gorm.DB, userID uint) (int64, error) {
	var count int64
	err := db.Model(&Notification{}).Where("user_id = ? AND read = ?", userID, false).Count(&count).Error
	return count, err
}

func MarkNotificationRead(db *gorm.DB, userID, id uint) error {
	now := time.Now().UTC()
	res := db.Model(&Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{"read": true, "read_at": now})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func MarkAllNotificationsRead(db *gorm.DB, userID uint) (int64, error) {
	now := time.Now().UTC()
	res := db.Model(&Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Updates(map[string]any{"read": true, "read_at": now})
	return res.RowsAffected, res.Error
}

func DeleteNotification(db *gorm.DB, userID, id uint) error {
	res := db.Where("id = ? AND user_id = ?", id, userID).Delete(&Notification{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetOrCreatePreferences returns the user's notification preferences,
// creating a row with defaults on first access.
func GetOrCreatePreferences(db *gorm.DB, userID uint) (*NotificationPreferences, error) {
	var prefs NotificationPreferences
	err := db.Where("user_id = ?", userID).First(&prefs).Error
	if err == nil {
		return &prefs, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	prefs = NotificationPreferences{
		UserID:                      userID,
		DailyCheckinEnabled:         true,
		DailyCheckinTime:            "09:00",
		MoodReminderEnabled:         true,
		MoodReminderTime:            "20:00",
		MeditationReminderEnabled:   true,
		MeditationReminderTime:      "19:00",
		GoalReminderEnabled:         true,
		GoalReminderFrequency:       "weekly",
		MotivationalMessagesEnabled: true,
		MotivationalFrequency:       "daily",
		CrisisCheckinEnabled:        true,
		PushNotificationsEnabled:    true,
	}
	if err := db.Create(&prefs).Error; err != nil {
		return nil, err
	}
	return &prefs, nil
}

func UpdatePreferences(db *gorm.DB, prefs *NotificationPreferences) error {
	return db.Save(prefs).Error
}

// HasNotificationToday reports whether a notification of the given type
// was already sent to the user today (UTC).
func HasNotificationToday(db *gorm.DB, userID uint, notifType string, now time.Time) (bool, error) {
	dayStart := time.Date(now.UTC().Year(), now.UTC().Month(), now.UTC().Day(), 0, 0, 0, 0, time.UTC)
	var count int64
	err := db.Model(&Notification{}).
		Where("user_id = ? AND type = ? AND sent_at >= ?", userID, notifType, dayStart).
		Count(&count).Error
	return count > 0, err
}
