package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ChatMessage is one turn of a session transcript.
type ChatMessage struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}

// MessageList stores the transcript as a JSON column.
type MessageList []ChatMessage

func (m MessageList) Value() (driver.Value, error) {
	if m == nil {
		return "[]", nil
	}
	b, err := json.Marshal(m)
	return string(b), err
}

func (m *MessageList) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return errors.New("unsupported type for MessageList")
	}
}

// Session is one chat conversation with the AI guide.
type Session struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	UserID    uint        `json:"userId" gorm:"index;not null"`
	User      User        `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Messages  MessageList `json:"messages" gorm:"type:text"`
	Sentiment string      `json:"sentiment" gorm:"size:32"`
	Summary   string      `json:"summary" gorm:"type:text"`
	CreatedAt time.Time   `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time   `json:"updatedAt" gorm:"autoUpdateTime"`
}

func CreateSession(db *gorm.DB, userID uint) (*Session, error) {
	session := &Session{UserID: userID, Messages: MessageList{}}
	if err := db.Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

func GetSession(db *gorm.DB, userID, sessionID uint) (*Session, error) {
	var session Session
	if err := db.Where("id = ? AND user_id = ?", sessionID, userID).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func GetSessionsByUser(db *gorm.DB, userID uint) ([]Session, error) {
	var sessions []Session
	if err := db.Where("user_id = ?", userID).Order("updated_at DESC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func UpdateSession(db *gorm.DB, session *Session) error {
	return db.Save(session).Error
}

func DeleteSession(db *gorm.DB, userID, sessionID uint) error {
	res := db.Where("id = ? AND user_id = ?", sessionID, userID).Delete(&Session{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SearchSessions scans transcripts for a case-insensitive substring and
// returns matching sessions, most recently updated first.
func SearchSessions(db *gorm.DB, userID uint, query string) ([]Session, error) {
	sessions, err := GetSessionsByUser(db, userID)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(query))
	var matched []Session
	for _, s := range sessions {
		for _, msg := range s.Messages {
			if strings.Contains(strings.ToLower(msg.Content), needle) {
				matched = append(matched, s)
				break
			}
		}
	}
	return matched, nil
}
