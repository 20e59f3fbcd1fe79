package handlers

import (
	"errors"

	"recipebox/domain"
	"recipebox/internal/api/presenters"
	"recipebox/internal/utils/storage"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// respondError maps domain errors onto the HTTP taxonomy. Anything outside
// the taxonomy is an internal failure: it is logged in full server-side and
// the response carries only the generic message, never driver error text.
func respondError(c *fiber.Ctx, message string, err error) error {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &validationErrs),
		errors.Is(err, domain.ErrTitleRequired),
		errors.Is(err, domain.ErrInstructionsRequired),
		errors.Is(err, domain.ErrNegativeQuantity),
		errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrUserNameMissing),
		errors.Is(err, domain.ErrInvalidSubmissionType),
		errors.Is(err, domain.ErrOriginalRecipeRequired),
		errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, storage.ErrFileTypeNotAllowed):
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, message, err)

	case errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrRecipeImageNotFound),
		errors.Is(err, domain.ErrIngredientNotFound),
		errors.Is(err, domain.ErrCompositionNotFound),
		errors.Is(err, domain.ErrOriginalRecipeNotFound),
		errors.Is(err, domain.ErrPantryItemNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return presenters.ErrorResponse(c, fiber.StatusNotFound, message, err)

	case errors.Is(err, domain.ErrIngredientInUse),
		errors.Is(err, domain.ErrIngredientInPantry),
		errors.Is(err, domain.ErrRecipeNotPending),
		errors.Is(err, domain.ErrEmailAlreadyExists):
		return presenters.ErrorResponse(c, fiber.StatusConflict, message, err)

	case errors.Is(err, domain.ErrCredentialsInvalid):
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, message, err)

	case errors.Is(err, domain.ErrUserNotAllowed):
		return presenters.ErrorResponse(c, fiber.StatusForbidden, message, err)

	default:
		log.Errorf("%s: %v", message, err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, message, nil)
	}
}

func viewerID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}

func viewerRole(c *fiber.Ctx) string {
	role, ok := c.Locals("role").(string)
	if !ok || role == "" {
		return domain.RoleGuest
	}
	return role
}
