package models

import (
	"time"

	"gorm.io/gorm"
)

// CrisisAlert statuses. "notified" is set only after the authority-notifier
// call returns; "resolved" is reserved for admin tooling, no code path here
// assigns it.
const (
	AlertStatusPending  = "pending"
	AlertStatusNotified = "notified"
	AlertStatusResolved = "resolved"
)

// CrisisAlert is the persisted record of one crisis-flagged chat message.
type CrisisAlert struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	UserID      uint   `json:"userId" gorm:"index;not null"`
	User        User   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	RiskLevel   string `json:"riskLevel" gorm:"size:16;not null"` // "high" or "medium"
	UserMessage string `json:"userMessage" gorm:"type:text"`      // triggering message, verbatim
	LocationLat *float64 `json:"locationLat,omitempty"`
	LocationLng *float64 `json:"locationLng,omitempty"`
	Country     string   `json:"country" gorm:"size:8"`
	EmergencyNumber string `json:"emergencyNumber" gorm:"size:32"`
	// JSON array of service names the notifier reports reaching
	NotifiedAuthorities string    `json:"notifiedAuthorities" gorm:"type:text"`
	Status              string    `json:"status" gorm:"size:16;default:pending"`
	CreatedAt           time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func CreateCrisisAlert(db *gorm.DB, alert *CrisisAlert) error {
	if alert.Status == "" {
		alert.Status = AlertStatusPending
	}
	return db.Create(alert).Error
}

// MarkAlertNotified records a successful notifier call.
func MarkAlertNotified(db *gorm.DB, alertID uint, notifiedServices string) error {
	return db.Model(&CrisisAlert{}).Where("id = ?", alertID).Updates(map[string]interface{}{
		"notified_authorities": notifiedServices,
		"status":               AlertStatusNotified,
	}).Error
}

func GetCrisisAlert(db *gorm.DB, id uint) (*CrisisAlert, error) {
	var alert CrisisAlert
	if err := db.First(&alert, id).Error; err != nil {
		return nil, err
	}
	return &alert, nil
}

func GetCrisisAlertsByUser(db *gorm.DB, userID uint) ([]CrisisAlert, error) {
	var alerts []CrisisAlert
	if err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}
