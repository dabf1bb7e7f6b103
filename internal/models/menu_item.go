package models

import (
	"time"

	"gorm.io/gorm"
)

type MenuItem struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	Name            string         `json:"name" gorm:"not null"`
	Category        string         `json:"category" gorm:"not null"`
	Description     string         `json:"description" gorm:"type:text"`
	Price           float64        `json:"price" gorm:"not null"`
	Available       bool           `json:"available" gorm:"default:true"`
	PrepTimeMinutes int            `json:"prep_time_minutes" gorm:"default:15"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
