package models

import "time"

// User is the account record of the identity subsystem. Accounts are hard
// deleted so the database cascade removes dependent rows (refresh tokens,
// availability propositions) with them.
type User struct {
	ID                  uint       `json:"id" gorm:"primaryKey"`
	Email               string     `json:"email" gorm:"uniqueIndex;not null"`
	Username            string     `json:"username" gorm:"uniqueIndex;not null"`
	Password            string     `json:"-" gorm:"not null"`
	Enabled             bool       `json:"enabled" gorm:"default:true"`
	Roles               Roles      `json:"roles" gorm:"type:jsonb;default:'[\"user\"]'::jsonb"`
	LastLogin           *time.Time `json:"last_login"`
	ConfirmationToken   *string    `json:"-"`
	PasswordRequestedAt *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// HasRole checks whether the user carries a specific role
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsPasswordRequestExpired checks whether the pending reset request is stale
func (u *User) IsPasswordRequestExpired(ttlSeconds int) bool {
	if u.PasswordRequestedAt == nil {
		return true
	}
	return time.Since(*u.PasswordRequestedAt).Seconds() > float64(ttlSeconds)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type PasswordResetRequest struct {
	Email       string `json:"email" binding:"required,email"`
	CallBackUrl string `json:"callBackUrl" binding:"required"`
}

type PasswordResetResponse struct {
	Success bool `json:"success"`
}

type PasswordResetConfirmRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type PasswordResetConfirmResponse struct {
	Success bool `json:"success"`
}
