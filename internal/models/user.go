package models

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	BaseModel
	FirstName    string         `gorm:"not null" json:"firstname"`
	LastName     string         `gorm:"not null" json:"lastname"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Role         UserRole       `gorm:"type:varchar(20)" json:"userType"`
	JobTitle     string         `json:"jobTitle"`
	Skills       datatypes.JSON `gorm:"type:jsonb" json:"skills"`

	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

// DisplayName is the name shown to other users (conversation lists, applicant cards).
func (u *User) DisplayName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
