package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	Email          string `json:"email" gorm:"size:255;uniqueIndex;not null"`
	HashedPassword string `json:"-" gorm:"size:255;not null"`
	FullName       string `json:"fullName" gorm:"size:255"`
	// demographics used by crisis resolution and the AI prompt
	Country        string    `json:"country" gorm:"size:8"` // ISO code, e.g. "US", "PK"
	Age            *int      `json:"age,omitempty"`
	Gender         string    `json:"gender" gorm:"size:32"`
	Timezone       string    `json:"timezone" gorm:"size:64"`
	Language       string    `json:"language" gorm:"size:16;default:en"`
	PrimaryConcern string    `json:"primaryConcern" gorm:"size:255"`
	CreatedAt      time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (u *User) SetPassword(plain string) error {
	// bcrypt rejects inputs over 72 bytes
	b := []byte(plain)
	if len(b) > 72 {
		b = b[:72]
	}
	hashed, err := bcrypt.GenerateFromPassword(b, bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.HashedPassword = string(hashed)
	return nil
}

func (u *User) CheckPassword(plain string) bool {
	b := []byte(plain)
	if len(b) > 72 {
		b = b[:72]
	}
	return bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), b) == nil
}

func CreateUser(db *gorm.DB, user *User) error {
	return db.Create(user).Error
}

func GetUserByEmail(db *gorm.DB, email string) (*User, error) {
	var user User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUserByID(db *gorm.DB, id uint) (*User, error) {
	var user User
	if err := db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func UpdateUser(db *gorm.DB, user *User) error {
	return db.Save(user).Error
}

// DeleteUser removes the user and, via FK constraints, every owned row.
func DeleteUser(db *gorm.DB, id uint) error {
	return db.Delete(&User{}, id).Error
}
