package composition

import (
	"context"
	"errors"

	"recipebox/domain"
	"recipebox/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// RecipeReader is the slice of the recipe store the composition service
	// needs to resolve ownership and visibility of the owning recipe.
	RecipeReader interface {
		GetRecipeByID(ctx context.Context, id string, privileged bool) (*entities.Recipe, error)
	}

	// CompositionService serves pending and approved recipes through the same
	// operations. Admins may edit any composition; a submitter may only edit
	// the composition of their own still-pending submission.
	CompositionService interface {
		AddIngredient(ctx context.Context, recipeID, userID, role string, req domain.AddRecipeIngredientRequest) error
		UpdateIngredient(ctx context.Context, recipeID, ingredientID, userID, role string, req domain.UpdateRecipeIngredientRequest) error
		RemoveIngredient(ctx context.Context, recipeID, ingredientID, userID, role string) error
		ListForRecipe(ctx context.Context, recipeID, userID, role string) ([]domain.CompositionItem, error)
	}

	compositionService struct {
		compositionRepository CompositionRepository
		recipes               RecipeReader
	}
)

func NewCompositionService(compositionRepository CompositionRepository, recipes RecipeReader) CompositionService {
	return &compositionService{
		compositionRepository: compositionRepository,
		recipes:               recipes,
	}
}

// authorize loads the owning recipe and decides what the caller may do with
// its composition. Recipes hidden from the viewer look absent rather than
// forbidden; visible but foreign recipes refuse writes.
func (s *compositionService) authorize(ctx context.Context, recipeID, userID, role string, write bool) error {
	rec, err := s.recipes.GetRecipeByID(ctx, recipeID, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if domain.IsPrivileged(role) {
		return nil
	}

	owner := userID != "" && rec.CreatedBy.String() == userID
	if rec.Status != entities.RecipeStatusApproved && !owner {
		return domain.ErrRecipeNotFound
	}
	if !write {
		return nil
	}
	if owner && rec.Status == entities.RecipeStatusPending {
		return nil
	}
	return domain.ErrUserNotAllowed
}

func (s *compositionService) AddIngredient(ctx context.Context, recipeID, userID, role string, req domain.AddRecipeIngredientRequest) error {
	if req.Quantity < 0 {
		return domain.ErrNegativeQuantity
	}
	if err := s.authorize(ctx, recipeID, userID, role, true); err != nil {
		return err
	}

	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.ErrParseUUID
	}
	ingredientUUID, err := uuid.Parse(req.IngredientID)
	if err != nil {
		return domain.ErrParseUUID
	}

	row := &entities.RecipeIngredient{
		RecipeID:     recipeUUID,
		IngredientID: ingredientUUID,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
	}
	return s.compositionRepository.UpsertRecipeIngredient(ctx, row)
}

func (s *compositionService) UpdateIngredient(ctx context.Context, recipeID, ingredientID, userID, role string, req domain.UpdateRecipeIngredientRequest) error {
	if req.Quantity < 0 {
		return domain.ErrNegativeQuantity
	}
	if err := s.authorize(ctx, recipeID, userID, role, true); err != nil {
		return err
	}

	affected, err := s.compositionRepository.UpdateRecipeIngredient(ctx, recipeID, ingredientID, req.Quantity, req.Unit)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCompositionNotFound
	}
	return nil
}

func (s *compositionService) RemoveIngredient(ctx context.Context, recipeID, ingredientID, userID, role string) error {
	if err := s.authorize(ctx, recipeID, userID, role, true); err != nil {
		return err
	}

	affected, err := s.compositionRepository.DeleteRecipeIngredient(ctx, recipeID, ingredientID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCompositionNotFound
	}
	return nil
}

func (s *compositionService) ListForRecipe(ctx context.Context, recipeID, userID, role string) ([]domain.CompositionItem, error) {
	if err := s.authorize(ctx, recipeID, userID, role, false); err != nil {
		return nil, err
	}

	rows, err := s.compositionRepository.ListRecipeIngredients(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.CompositionItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.CompositionItem{
			IngredientID: row.IngredientID.String(),
			Name:         row.Name,
			Quantity:     row.Quantity,
			Unit:         row.Unit,
		})
	}
	return items, nil
}
