package domain

import (
	"errors"
)

var (
	MessageSuccessAddRecipeIngredient    = "ingredient added to recipe"
	MessageSuccessUpdateRecipeIngredient = "recipe ingredient updated"
	MessageSuccessRemoveRecipeIngredient = "ingredient removed from recipe"
	MessageSuccessListRecipeIngredients  = "success get recipe ingredients"

	MessageFailedAddRecipeIngredient    = "failed to add ingredient to recipe"
	MessageFailedUpdateRecipeIngredient = "failed to update recipe ingredient"
	MessageFailedRemoveRecipeIngredient = "failed to remove ingredient from recipe"
	MessageFailedListRecipeIngredients  = "failed to get recipe ingredients"

	ErrNegativeQuantity    = errors.New("quantity must not be negative")
	ErrCompositionNotFound = errors.New("recipe has no such ingredient")
)

type (
	AddRecipeIngredientRequest struct {
		IngredientID string  `json:"ingredient_id" validate:"required,uuid"`
		Quantity     float64 `json:"quantity"`
		Unit         string  `json:"unit"`
	}

	UpdateRecipeIngredientRequest struct {
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
	}

	CompositionItem struct {
		IngredientID string  `json:"ingredient_id"`
		Name         string  `json:"name"`
		Quantity     float64 `json:"quantity"`
		Unit         string  `json:"unit"`
	}
)
