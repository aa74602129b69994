package models

import (
	"time"

	"gorm.io/gorm"
)

type MoodLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"index;not null"`
	User      User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	MoodType  string    `json:"moodType" gorm:"size:32;not null"` // "happy", "sad", "anxious", ...
	Intensity *int      `json:"intensity,omitempty"`              // 1-10
	Notes     string    `json:"notes" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

type MoodStats struct {
	TotalLogs        int64            `json:"totalLogs"`
	AverageIntensity float64          `json:"averageIntensity"`
	Distribution     map[string]int64 `json:"distribution"`
}

func CreateMoodLog(db *gorm.DB, log *MoodLog) error {
	return db.Create(log).Error
}

func GetMoodLogs(db *gorm.DB, userID uint, limit int) ([]MoodLog, error) {
	if limit <= 0 {
		limit = 30
	}
	var logs []MoodLog
	if err := db.Where("user_id = ?", userID).Order("created_at DESC").Limit(limit).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func GetMoodLogsSince(db *gorm.DB, userID uint, since time.Time) ([]MoodLog, error) {
	var logs []MoodLog
	if err := db.Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func GetMoodStats(db *gorm.DB, userID uint) (*MoodStats, error) {
	stats := &MoodStats{Distribution: map[string]int64{}}

	if err := db.Model(&MoodLog{}).Where("user_id = ?", userID).Count(&stats.TotalLogs).Error; err != nil {
		return nil, err
	}

	var avg *float64
	if err := db.Model(&MoodLog{}).Where("user_id = ?", userID).
		Select("AVG(intensity)").Scan(&avg).Error; err != nil {
		return nil, err
	}
	if avg != nil {
		stats.AverageIntensity = *avg
	}

	rows := []struct {
		MoodType string
		Count    int64
	}{}
	if err := db.Model(&MoodLog{}).Where("user_id = ?", userID).
		Select("mood_type, COUNT(*) AS count").Group("mood_type").Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		stats.Distribution[r.MoodType] = r.Count
	}
	return stats, nil
}

// HasMoodLogToday reports whether the user already logged a mood today
// (UTC); the notification sweep uses this to skip reminders.
func HasMoodLogToday(db *gorm.DB, userID uint, now time.Time) (bool, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	var count int64
	err := db.Model(&MoodLog{}).
		Where("user_id = ? AND created_at >= ?", userID, dayStart).
		Count(&count).Error
	return count > 0, err
}
