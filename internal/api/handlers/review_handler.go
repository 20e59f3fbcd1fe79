package handlers

import (
	"recipebox/domain"
	"recipebox/internal/api/presenters"
	"recipebox/pkg/review"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReviewHandler interface {
		SubmitReview(c *fiber.Ctx) error
		GetReviewsForRecipe(c *fiber.Ctx) error
	}

	reviewHandler struct {
		reviewService review.ReviewService
		validator     *validator.Validate
	}
)

func NewReviewHandler(reviewService review.ReviewService, validator *validator.Validate) ReviewHandler {
	return &reviewHandler{
		reviewService: reviewService,
		validator:     validator,
	}
}

func (h *reviewHandler) SubmitReview(c *fiber.Ctx) error {
	req := new(domain.SubmitReviewRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return respondError(c, domain.MessageFailedSubmitReview, err)
	}

	res, err := h.reviewService.SubmitReview(c.Context(), *req)
	if err != nil {
		return respondError(c, domain.MessageFailedSubmitReview, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSubmitReview)
}

func (h *reviewHandler) GetReviewsForRecipe(c *fiber.Ctx) error {
	recipeID := c.Params("recipeId")

	res, err := h.reviewService.GetReviewsForRecipe(c.Context(), recipeID)
	if err != nil {
		return respondError(c, domain.MessageFailedGetReviews, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReviews)
}
