package domain

import (
	"errors"
)

var (
	MessageSuccessSubmitRecipe  = "recipe submitted for review"
	MessageSuccessApproveRecipe = "recipe approved"
	MessageSuccessRejectRecipe  = "recipe rejected"
	MessageSuccessGetPending    = "success get pending recipes"

	MessageFailedSubmitRecipe  = "failed to submit recipe"
	MessageFailedApproveRecipe = "failed to approve recipe"
	MessageFailedRejectRecipe  = "failed to reject recipe"
	MessageFailedGetPending    = "failed to get pending recipes"

	ErrInvalidSubmissionType  = errors.New("submission type must be new or edit")
	ErrOriginalRecipeRequired = errors.New("edit submissions must reference an original recipe")
	ErrOriginalRecipeNotFound = errors.New("original recipe not found")
	ErrRecipeNotPending       = errors.New("recipe is not pending review")
)

type (
	// SubmitRecipeRequest mirrors CreateRecipeRequest; a caller-supplied
	// status is never accepted, submissions always persist as pending.
	SubmitRecipeRequest struct {
		Title            string   `json:"title" validate:"required"`
		Description      string   `json:"description"`
		Instructions     string   `json:"instructions" validate:"required"`
		CookingTime      int      `json:"cooking_time" validate:"omitempty,gte=0"`
		Difficulty       string   `json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
		CuisineType      string   `json:"cuisine_type"`
		Steps            []string `json:"steps"`
		SubmissionType   string   `json:"submission_type" validate:"omitempty,oneof=new edit"`
		OriginalRecipeID string   `json:"original_recipe_id" validate:"omitempty,uuid"`
		CopyIngredients  bool     `json:"copy_ingredients"`
	}
)
