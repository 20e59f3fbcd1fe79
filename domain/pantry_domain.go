package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddPantryItem    = "pantry item saved"
	MessageSuccessGetPantry        = "success get pantry"
	MessageSuccessRemovePantryItem = "pantry item removed"

	MessageFailedAddPantryItem    = "failed to save pantry item"
	MessageFailedGetPantry        = "failed to get pantry"
	MessageFailedRemovePantryItem = "failed to remove pantry item"

	ErrPantryItemNotFound = errors.New("pantry item not found")
)

type (
	AddPantryItemRequest struct {
		IngredientID string  `json:"ingredient_id" validate:"required,uuid"`
		Quantity     float64 `json:"quantity" validate:"gte=0"`
		Unit         string  `json:"unit"`
	}

	PantryItem struct {
		IngredientID string    `json:"ingredient_id"`
		Name         string    `json:"name"`
		Quantity     float64   `json:"quantity"`
		Unit         string    `json:"unit"`
		CreatedAt    time.Time `json:"created_at"`
	}
)
