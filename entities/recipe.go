package entities

import (
	"github.com/google/uuid"
)

// Recipe status values. The only transitions this engine performs are
// pending -> approved and pending -> rejected.
const (
	RecipeStatusPending  = "pending"
	RecipeStatusApproved = "approved"
	RecipeStatusRejected = "rejected"
)

const (
	SubmissionTypeNew  = "new"
	SubmissionTypeEdit = "edit"
)

type Recipe struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Instructions     string     `json:"instructions" gorm:"type:text"`
	CookingTime      int        `json:"cooking_time"`
	Difficulty       string     `json:"difficulty"`
	CuisineType      string     `json:"cuisine_type"`
	CreatedBy        uuid.UUID  `json:"created_by" gorm:"type:uuid"`
	Status           string     `json:"status" gorm:"index"`
	SubmissionType   string     `json:"submission_type,omitempty"`
	OriginalRecipeID *uuid.UUID `json:"original_recipe_id,omitempty" gorm:"type:uuid"`

	Timestamp
}

// RecipeIngredient is the composition edge between a recipe and a catalog
// ingredient. The composite primary key makes the pair unique; the same table
// serves pending and approved recipes alike.
type RecipeIngredient struct {
	RecipeID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	IngredientID uuid.UUID `gorm:"type:uuid;primaryKey" json:"ingredient_id"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
}

type RecipeStep struct {
	RecipeID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	StepNumber  int       `gorm:"primaryKey" json:"step_number"`
	Description string    `gorm:"type:text" json:"description"`
}

// RecipeImage holds the public URL of the externally hosted asset. One row
// per recipe.
type RecipeImage struct {
	RecipeID uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	ImageURL string    `json:"image_url"`
}
