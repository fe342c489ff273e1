package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	UserID        string `gorm:"uniqueIndex"`
	Email         string `gorm:"uniqueIndex;not null"`
	Password      string `gorm:"not null"`
	FirstName     string
	LastName      string
	Birthday      time.Time
	Sex           string
	Disabled      bool
	MFAEnabled    bool
	MFACode       string
	ResetToken    string
	ResetTokenExp time.Time
}
