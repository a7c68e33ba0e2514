package models

import "time"

// BlacklistedToken marks a bearer token as revoked until it expires on its own.
type BlacklistedToken struct {
	ID        uint      `gorm:"primarykey"`
	Token     string    `gorm:"not null;unique;index"`
	ExpiresAt int64     `gorm:"not null;index"`
	CreatedAt time.Time
}
