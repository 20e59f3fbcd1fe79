package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessSubmitReview = "review submitted successfully"
	MessageSuccessGetReviews   = "success get reviews"

	MessageFailedSubmitReview = "failed to submit review"
	MessageFailedGetReviews   = "failed to get reviews"

	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrUserNameMissing = errors.New("user name is required")
)

type (
	SubmitReviewRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
		UserName string `json:"user_name" validate:"required"`
		Rating   int    `json:"rating" validate:"required,min=1,max=5"`
		Comment  string `json:"comment"`
	}

	Review struct {
		ID        string    `json:"id"`
		RecipeID  string    `json:"recipe_id"`
		UserName  string    `json:"user_name"`
		Rating    int       `json:"rating"`
		Comment   string    `json:"comment"`
		CreatedAt time.Time `json:"created_at"`
	}
)
