package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
	GoalStatusArchived  = "archived"
)

type Goal struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	UserID      uint       `json:"userId" gorm:"index;not null"`
	User        User       `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Title       string     `json:"title" gorm:"size:255;not null"`
	Description string     `json:"description" gorm:"type:text"`
	Category    string     `json:"category" gorm:"size:64"`
	TargetDate  *time.Time `json:"targetDate,omitempty"`
	Status      string     `json:"status" gorm:"size:16;default:active"`
	Progress    int        `json:"progress" gorm:"default:0"` // 0-100
	CreatedAt   time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

func CreateGoal(db *gorm.DB, goal *Goal) error {
	if goal.Status == "" {
		goal.Status = GoalStatusActive
	}
	return db.Create(goal).Error
}

func GetGoal(db *gorm.DB, userID, id uint) (*Goal, error) {
	var goal Goal
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func GetGoals(db *gorm.DB, userID uint, status string) ([]Goal, error) {
	q := db.Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var goals []Goal
	if err := q.Order("created_at DESC").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func CountActiveGoals(db *gorm.DB, userID uint) (int64, error) {
	var count int64
	err := db.Model(&Goal{}).Where("user_id = ? AND status = ?", userID, GoalStatusActive).Count(&count).Error
	return count, err
}

func UpdateGoal(db *gorm.DB, goal *Goal) error {
	return db.Save(goal).Error
}

func DeleteGoal(db *gorm.DB, userID, id uint) error {
	res := db.Where("id = ? AND user_id = ?", id, userID).Delete(&Goal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
