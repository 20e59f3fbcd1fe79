package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetIngredients    = "success get ingredients"
	MessageSuccessGetIngredient     = "success get ingredient"
	MessageSuccessCreateIngredient  = "ingredient created successfully"
	MessageSuccessUpdateIngredient  = "ingredient updated successfully"
	MessageSuccessDeleteIngredient  = "ingredient deleted successfully"
	MessageSuccessSearchIngredients = "success search ingredients"

	MessageFailedGetIngredients    = "failed to get ingredients"
	MessageFailedGetIngredient     = "failed to get ingredient"
	MessageFailedCreateIngredient  = "failed to create ingredient"
	MessageFailedUpdateIngredient  = "failed to update ingredient"
	MessageFailedDeleteIngredient  = "failed to delete ingredient"
	MessageFailedSearchIngredients = "failed to search ingredients"

	ErrIngredientNotFound = errors.New("ingredient not found")
	// The two reference checks are reported distinctly so the caller knows
	// which table still points at the ingredient.
	ErrIngredientInUse    = errors.New("ingredient is used by one or more recipes")
	ErrIngredientInPantry = errors.New("ingredient is present in one or more pantries")
)

type (
	CreateIngredientRequest struct {
		Name            string `json:"name" validate:"required"`
		NutritionalInfo string `json:"nutritional_info"`
	}

	UpdateIngredientRequest struct {
		Name            string `json:"name" validate:"required"`
		NutritionalInfo string `json:"nutritional_info"`
	}

	Ingredient struct {
		ID              string    `json:"id"`
		Name            string    `json:"name"`
		NutritionalInfo string    `json:"nutritional_info"`
		CreatedAt       time.Time `json:"created_at"`
	}
)
