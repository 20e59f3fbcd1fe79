package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessSearchRecipes   = "success search recipes"
	MessageSuccessGetSteps        = "success get recipe steps"
	MessageSuccessGetImage        = "success get recipe image"
	MessageSuccessUploadImage     = "recipe image uploaded successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedSearchRecipes   = "failed to search recipes"
	MessageFailedGetSteps        = "failed to get recipe steps"
	MessageFailedGetImage        = "failed to get recipe image"
	MessageFailedUploadImage     = "failed to upload recipe image"

	ErrRecipeNotFound       = errors.New("recipe not found")
	ErrRecipeImageNotFound  = errors.New("recipe image not found")
	ErrTitleRequired        = errors.New("title is required")
	ErrInstructionsRequired = errors.New("instructions are required")
)

type (
	CreateRecipeRequest struct {
		Title        string   `json:"title" validate:"required"`
		Description  string   `json:"description"`
		Instructions string   `json:"instructions" validate:"required"`
		CookingTime  int      `json:"cooking_time" validate:"omitempty,gte=0"`
		Difficulty   string   `json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
		CuisineType  string   `json:"cuisine_type"`
		Steps        []string `json:"steps"`
	}

	// UpdateRecipeRequest carries pointers so that a field explicitly
	// supplied as empty replaces the stored value, while an omitted field is
	// left untouched.
	UpdateRecipeRequest struct {
		Title        *string   `json:"title"`
		Description  *string   `json:"description"`
		Instructions *string   `json:"instructions"`
		CookingTime  *int      `json:"cooking_time"`
		Difficulty   *string   `json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
		CuisineType  *string   `json:"cuisine_type"`
		Steps        *[]string `json:"steps"`
	}

	Recipe struct {
		ID               string    `json:"id"`
		Title            string    `json:"title"`
		Description      string    `json:"description"`
		Instructions     string    `json:"instructions"`
		CookingTime      int       `json:"cooking_time"`
		Difficulty       string    `json:"difficulty"`
		CuisineType      string    `json:"cuisine_type"`
		CreatedBy        string    `json:"created_by"`
		Status           string    `json:"status"`
		SubmissionType   string    `json:"submission_type,omitempty"`
		OriginalRecipeID string    `json:"original_recipe_id,omitempty"`
		CreatedAt        time.Time `json:"created_at"`
		UpdatedAt        time.Time `json:"updated_at"`
	}

	RecipeDetail struct {
		Recipe
		Ingredients []CompositionItem `json:"ingredients"`
		Steps       []RecipeStep      `json:"steps"`
		ImageURL    string            `json:"image_url,omitempty"`
	}

	RecipeStep struct {
		StepNumber  int    `json:"step_number"`
		Description string `json:"description"`
	}

	RecipeImage struct {
		RecipeID string `json:"recipe_id"`
		ImageURL string `json:"image_url"`
	}
)
