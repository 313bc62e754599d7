package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/google/uuid"
)

// StringArray stores an ordered list of identifier strings as a JSON
// array column. Insertion order is preserved and duplicates are kept.
type StringArray []string

// Value implements the driver.Valuer interface
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Step holds a recipe instruction. Ingredients is a list of raw
// ingredient-id references; entries are never checked for existence and
// may dangle after an ingredient is deleted. (position, id) carries a
// composite unique index, so positions alone are a weak ordering hint.
type Step struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey;uniqueIndex:idx_steps_position_id" json:"id"`
	Description string      `gorm:"not null" json:"description"`
	Position    int         `gorm:"not null;uniqueIndex:idx_steps_position_id" json:"position"`
	Ingredients StringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	RecipeID    uuid.UUID   `gorm:"type:uuid;index" json:"recipe"`
}
