package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

type TagList []string

func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal(t)
	return string(b), err
}

func (t *TagList) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return errors.New("unsupported type for TagList")
	}
}

type JournalEntry struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"userId" gorm:"index;not null"`
	User        User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Title       string    `json:"title" gorm:"size:255"`
	Content     string    `json:"content" gorm:"type:text;not null"`
	Mood        string    `json:"mood" gorm:"size:32"`
	Tags        TagList   `json:"tags" gorm:"type:text"`
	JournalType string    `json:"journalType" gorm:"size:32;default:general"` // general, gratitude, dream
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func CreateJournalEntry(db *gorm.DB, entry *JournalEntry) error {
	return db.Create(entry).Error
}

func GetJournalEntry(db *gorm.DB, userID, id uint) (*JournalEntry, error) {
	var entry JournalEntry
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func GetJournalEntries(db *gorm.DB, userID uint, journalType string, limit int) ([]JournalEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	q := db.Where("user_id = ?", userID)
	if journalType != "" {
		q = q.Where("journal_type = ?", journalType)
	}
	var entries []JournalEntry
	if err := q.Order("created_at DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func GetJournalEntriesSince(db *gorm.DB, userID uint, since time.Time) ([]JournalEntry, error) {
	var entries []JournalEntry
	if err := db.Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func UpdateJournalEntry(db *gorm.DB, entry *JournalEntry) error {
	return db.Save(entry).Error
}

func DeleteJournalEntry(db *gorm.DB, userID, id uint) error {
	res := db.Where("id = ? AND user_id = ?", id, userID).Delete(&JournalEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
