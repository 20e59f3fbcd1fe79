package ingredient

import (
	"context"
	"errors"

	"recipebox/domain"
	"recipebox/entities"
	"recipebox/pkg/composition"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	IngredientService interface {
		CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (*domain.Ingredient, error)
		GetIngredient(ctx context.Context, id string) (*domain.Ingredient, error)
		GetIngredients(ctx context.Context) ([]domain.Ingredient, error)
		SearchIngredients(ctx context.Context, substring string) ([]domain.Ingredient, error)
		UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest) error
		DeleteIngredient(ctx context.Context, id string) error
	}

	ingredientService struct {
		ingredientRepository  IngredientRepository
		compositionRepository composition.CompositionRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository, compositionRepository composition.CompositionRepository) IngredientService {
	return &ingredientService{
		ingredientRepository:  ingredientRepository,
		compositionRepository: compositionRepository,
	}
}

func toIngredientResponse(ingredient *entities.Ingredient) domain.Ingredient {
	return domain.Ingredient{
		ID:              ingredient.ID.String(),
		Name:            ingredient.Name,
		NutritionalInfo: ingredient.NutritionalInfo,
		CreatedAt:       ingredient.CreatedAt,
	}
}

func (s *ingredientService) CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (*domain.Ingredient, error) {
	// Names are display keys only; duplicates are allowed.
	ingredient := &entities.Ingredient{
		ID:              uuid.New(),
		Name:            req.Name,
		NutritionalInfo: req.NutritionalInfo,
	}
	if err := s.ingredientRepository.CreateIngredient(ctx, ingredient); err != nil {
		return nil, err
	}

	res := toIngredientResponse(ingredient)
	return &res, nil
}

func (s *ingredientService) GetIngredient(ctx context.Context, id string) (*domain.Ingredient, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIngredientNotFound
		}
		return nil, err
	}

	res := toIngredientResponse(ingredient)
	return &res, nil
}

func (s *ingredientService) GetIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	ingredients, err := s.ingredientRepository.GetIngredients(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Ingredient, 0, len(ingredients))
	for _, ingredient := range ingredients {
		result = append(result, toIngredientResponse(ingredient))
	}
	return result, nil
}

func (s *ingredientService) SearchIngredients(ctx context.Context, substring string) ([]domain.Ingredient, error) {
	ingredients, err := s.ingredientRepository.SearchIngredients(ctx, substring)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Ingredient, 0, len(ingredients))
	for _, ingredient := range ingredients {
		result = append(result, toIngredientResponse(ingredient))
	}
	return result, nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest) error {
	if err := s.ingredientRepository.UpdateIngredient(ctx, id, req.Name, req.NutritionalInfo); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}
	return nil
}

// DeleteIngredient refuses to remove an ingredient that is still referenced.
// Both referencing tables are checked up front, before any delete statement,
// and each is reported with its own error.
func (s *ingredientService) DeleteIngredient(ctx context.Context, id string) error {
	if _, err := s.ingredientRepository.GetIngredientByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	recipeRefs, err := s.compositionRepository.CountByIngredient(ctx, id)
	if err != nil {
		return err
	}
	if recipeRefs > 0 {
		return domain.ErrIngredientInUse
	}

	pantryRefs, err := s.ingredientRepository.CountPantryReferences(ctx, id)
	if err != nil {
		return err
	}
	if pantryRefs > 0 {
		return domain.ErrIngredientInPantry
	}

	return s.ingredientRepository.DeleteIngredient(ctx, id)
}
