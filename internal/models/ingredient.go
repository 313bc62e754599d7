package models

import "github.com/google/uuid"

// Ingredient belongs to exactly one recipe. The owning recipe is stored
// as a raw identifier; existence is enforced by the creation workflow,
// not by a schema-level constraint.
type Ingredient struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Count    float64   `gorm:"not null" json:"count"`
	Measure  string    `gorm:"not null" json:"measure"`
	RecipeID uuid.UUID `gorm:"type:uuid;index" json:"recipe"`
}
