package entities

import (
	"time"

	"github.com/google/uuid"
)

// Ingredient names are display keys only; uniqueness is not enforced.
type Ingredient struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string    `json:"name" gorm:"index"`
	NutritionalInfo string    `json:"nutritional_info" gorm:"type:text"`

	Timestamp
}

type PantryItem struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	IngredientID uuid.UUID `gorm:"type:uuid;primaryKey" json:"ingredient_id"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
	CreatedAt    time.Time `gorm:"type:timestamp" json:"created_at"`
}
