package models

import "time"

// Role values carried in the auth token
type Role string

const (
	RoleStore Role = "store"
	RoleAdmin Role = "admin"
)

type Admin struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
