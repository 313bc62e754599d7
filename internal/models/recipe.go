package models

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is the root entity; ingredients and steps reference it by id.
// Timestamps are managed by the service layer, not by gorm.
type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:30;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}
