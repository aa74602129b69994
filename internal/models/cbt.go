package models

import (
	"time"

	"gorm.io/gorm"
)

// ThoughtRecord is a CBT cognitive-restructuring worksheet row.
type ThoughtRecord struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	UserID             uint      `json:"userId" gorm:"index;not null"`
	User               User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Situation          string    `json:"situation" gorm:"type:text"`
	AutomaticThought   string    `json:"automaticThought" gorm:"type:text"`
	Emotion            string    `json:"emotion" gorm:"size:64"`
	Intensity          *int      `json:"intensity,omitempty"` // 1-10
	EvidenceFor        string    `json:"evidenceFor" gorm:"type:text"`
	EvidenceAgainst    string    `json:"evidenceAgainst" gorm:"type:text"`
	AlternativeThought string    `json:"alternativeThought" gorm:"type:text"`
	Outcome            string    `json:"outcome" gorm:"type:text"`
	CreatedAt          time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func CreateThoughtRecord(db *gorm.DB, record *ThoughtRecord) error {
	return db.Create(record).Error
}

func GetThoughtRecord(db *gorm.DB, userID, id uint) (*ThoughtRecord, error) {
	var record ThoughtRecord
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func GetThoughtRecords(db *gorm.DB, userID uint) ([]ThoughtRecord, error) {
	var records []ThoughtRecord
	if err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func UpdateThoughtRecord(db *gorm.DB, record *ThoughtRecord) error {
	return db.Save(record).Error
}

func DeleteThoughtRecord(db *gorm.DB, userID, id uint) error {
	res := db.Where("id = ? AND user_id = ?", id, userID).Delete(&ThoughtRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
