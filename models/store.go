package models

import "time"

// Store is both the restaurant record and the owner's login account.
type Store struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name" gorm:"not null"`
	Phone        string     `json:"phone"`
	Address      string     `json:"address"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"not null"`
	QRSlug       string     `json:"qr_slug" gorm:"uniqueIndex;not null"` // embedded in the printed QR code
	HasTables    bool       `json:"has_tables" gorm:"default:false"`
	TableCount   int        `json:"table_count" gorm:"default:0"`
	IsSuspended  bool       `json:"is_suspended" gorm:"default:false"`
	MenuItems    []MenuItem `json:"menu_items,omitempty" gorm:"foreignKey:StoreID"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type MenuItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	StoreID     uint      `json:"store_id" gorm:"not null;index"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"not null"`
	Image       string    `json:"image"` // base64 data URI, stored as-is
	IsAvailable bool      `json:"is_available" gorm:"default:true"`
	Addons      []Addon   `json:"addons" gorm:"serializer:json"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
