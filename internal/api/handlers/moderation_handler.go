package handlers

import (
	"recipebox/domain"
	"recipebox/internal/api/presenters"
	"recipebox/pkg/moderation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ModerationHandler interface {
		SubmitRecipe(c *fiber.Ctx) error
		ApproveRecipe(c *fiber.Ctx) error
		RejectRecipe(c *fiber.Ctx) error
		GetPendingRecipes(c *fiber.Ctx) error
	}

	moderationHandler struct {
		moderationService moderation.ModerationService
		validator         *validator.Validate
	}
)

func NewModerationHandler(moderationService moderation.ModerationService, validator *validator.Validate) ModerationHandler {
	return &moderationHandler{
		moderationService: moderationService,
		validator:         validator,
	}
}

func (h *moderationHandler) SubmitRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SubmitRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return respondError(c, domain.MessageFailedSubmitRecipe, err)
	}

	res, err := h.moderationService.SubmitRecipe(c.Context(), *req, userID)
	if err != nil {
		return respondError(c, domain.MessageFailedSubmitRecipe, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSubmitRecipe)
}

func (h *moderationHandler) ApproveRecipe(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	if err := h.moderationService.ApproveRecipe(c.Context(), recipeID); err != nil {
		return respondError(c, domain.MessageFailedApproveRecipe, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessApproveRecipe)
}

func (h *moderationHandler) RejectRecipe(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	if err := h.moderationService.RejectRecipe(c.Context(), recipeID); err != nil {
		return respondError(c, domain.MessageFailedRejectRecipe, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRejectRecipe)
}

func (h *moderationHandler) GetPendingRecipes(c *fiber.Ctx) error {
	res, err := h.moderationService.GetPendingRecipes(c.Context())
	if err != nil {
		return respondError(c, domain.MessageFailedGetPending, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPending)
}
