package handlers

import (
	"recipebox/domain"
	"recipebox/internal/api/presenters"
	"recipebox/pkg/composition"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	// CompositionHandler serves one route family for both pending and
	// approved recipes; the service decides per caller what the recipe id
	// may be used for.
	CompositionHandler interface {
		AddRecipeIngredient(c *fiber.Ctx) error
		ListRecipeIngredients(c *fiber.Ctx) error
		UpdateRecipeIngredient(c *fiber.Ctx) error
		RemoveRecipeIngredient(c *fiber.Ctx) error
	}

	compositionHandler struct {
		compositionService composition.CompositionService
		validator          *validator.Validate
	}
)

func NewCompositionHandler(compositionService composition.CompositionService, validator *validator.Validate) CompositionHandler {
	return &compositionHandler{
		compositionService: compositionService,
		validator:          validator,
	}
}

func (h *compositionHandler) AddRecipeIngredient(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	req := new(domain.AddRecipeIngredientRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return respondError(c, domain.MessageFailedAddRecipeIngredient, err)
	}

	if err := h.compositionService.AddIngredient(c.Context(), recipeID, viewerID(c), viewerRole(c), *req); err != nil {
		return respondError(c, domain.MessageFailedAddRecipeIngredient, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAddRecipeIngredient)
}

func (h *compositionHandler) ListRecipeIngredients(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	res, err := h.compositionService.ListForRecipe(c.Context(), recipeID, viewerID(c), viewerRole(c))
	if err != nil {
		return respondError(c, domain.MessageFailedListRecipeIngredients, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessListRecipeIngredients)
}

func (h *compositionHandler) UpdateRecipeIngredient(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	ingredientID := c.Params("ingredientId")
	req := new(domain.UpdateRecipeIngredientRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return respondError(c, domain.MessageFailedUpdateRecipeIngredient, err)
	}

	if err := h.compositionService.UpdateIngredient(c.Context(), recipeID, ingredientID, viewerID(c), viewerRole(c), *req); err != nil {
		return respondError(c, domain.MessageFailedUpdateRecipeIngredient, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateRecipeIngredient)
}

func (h *compositionHandler) RemoveRecipeIngredient(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	ingredientID := c.Params("ingredientId")

	if err := h.compositionService.RemoveIngredient(c.Context(), recipeID, ingredientID, viewerID(c), viewerRole(c)); err != nil {
		return respondError(c, domain.MessageFailedRemoveRecipeIngredient, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveRecipeIngredient)
}
