package models

import (
	"time"

	"gorm.io/gorm"
)

type SleepLog struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"userId" gorm:"index;not null"`
	User          User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	SleepTime     time.Time `json:"sleepTime" gorm:"not null"`
	WakeTime      time.Time `json:"wakeTime" gorm:"not null"`
	DurationHours float64   `json:"durationHours"`
	Quality       *int      `json:"quality,omitempty"` // 1-10
	Notes         string    `json:"notes" gorm:"type:text"`
	CreatedAt     time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

type SleepStats struct {
	TotalLogs       int64   `json:"totalLogs"`
	AverageDuration float64 `json:"averageDuration"`
	AverageQuality  float64 `json:"averageQuality"`
}

func CreateSleepLog(db *gorm.DB, log *SleepLog) error {
	if log.DurationHours == 0 && log.WakeTime.After(log.SleepTime) {
		log.DurationHours = log.WakeTime.Sub(log.SleepTime).Hours()
	}
	return db.Create(log).Error
}

func GetSleepLogs(db *gorm.DB, userID uint, limit int) ([]SleepLog, error) {
	if limit <= 0 {
		limit = 30
	}
	var logs []SleepLog
	err := db.Where("user_id = ?", userID).
		Order("sleep_time DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func GetSleepLogsSince(db *gorm.DB, userID uint, since time.Time) ([]SleepLog, error) {
	var logs []SleepLog
	err := db.Where("user_id = ? AND sleep_time >= ?", userID, since).
		Order("sleep_time ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func GetSleepStats(db *gorm.DB, userID uint, since time.Time) (*SleepStats, error) {
	stats := &SleepStats{}
	q := db.Model(&SleepLog{}).Where("user_id = ? AND sleep_time >= ?", userID, since)
	if err := q.Count(&stats.TotalLogs).Error; err != nil {
		return nil, err
	}
	if stats.TotalLogs == 0 {
		return stats, nil
	}
	row := q.Select("AVG(duration_hours), AVG(quality)").Row()
	var avgDuration, avgQuality *float64
	if err := row.Scan(&avgDuration, &avgQuality); err != nil {
		return nil, err
	}
	if avgDuration != nil {
		stats.AverageDuration = *avgDuration
	}
	if avgQuality != nil {
		stats.AverageQuality = *avgQuality
	}
	return stats, nil
}

func DeleteSleepLog(db *gorm.DB, userID, id uint) error {
	res := db.Where("id = ? AND user_id = ?", id, userID).Delete(&SleepLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
