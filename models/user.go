package models

import "time"

type User struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	Email          string    `gorm:"not null;unique" json:"email"`
	HashedPassword string    `gorm:"not null" json:"-"`
	IsActive       bool      `gorm:"not null" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	Items          []Item    `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE;" json:"-"`
}
