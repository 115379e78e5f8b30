package models

import (
	"time"

	"github.com/google/uuid"
)

// Note belongs to exactly one user. Deleted notes stay in the table with the
// flag set; every query filters them out.
type Note struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;index;not null"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Content   string    `json:"content" gorm:"type:text"`
	Deleted   bool      `json:"-" gorm:"default:false;index"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime;index"`
}
