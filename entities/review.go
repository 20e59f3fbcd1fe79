package entities

import (
	"time"

	"github.com/google/uuid"
)

// Review is append-only. UserName is free text, not a reference to an
// account, and the same name may review the same recipe any number of times.
type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;index" json:"recipe_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
}
