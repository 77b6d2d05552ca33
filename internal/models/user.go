package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User registered account. Password holds the bcrypt hash and is never serialized.
type User struct {
	ID       string    `json:"_id" gorm:"primaryKey;size:36"`
	Name     string    `json:"name" gorm:"not null"`
	Email    string    `json:"email,omitempty" gorm:"size:255;uniqueIndex;not null"`
	Password string    `json:"-" gorm:"not null"`
	Avatar   string    `json:"avatar"`
	Date     time.Time `json:"date"`
}

// BeforeCreate assigns a generated identifier.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
