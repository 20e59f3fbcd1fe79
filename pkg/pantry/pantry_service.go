package pantry

import (
	"context"

	"recipebox/domain"
	"recipebox/entities"

	"github.com/google/uuid"
)

type (
	PantryService interface {
		AddItem(ctx context.Context, userID string, req domain.AddPantryItemRequest) error
		ListItems(ctx context.Context, userID string) ([]domain.PantryItem, error)
		RemoveItem(ctx context.Context, userID, ingredientID string) error
	}

	pantryService struct {
		pantryRepository PantryRepository
	}
)

func NewPantryService(pantryRepository PantryRepository) PantryService {
	return &pantryService{pantryRepository: pantryRepository}
}

func (s *pantryService) AddItem(ctx context.Context, userID string, req domain.AddPantryItemRequest) error {
	if req.Quantity < 0 {
		return domain.ErrNegativeQuantity
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	ingredientUUID, err := uuid.Parse(req.IngredientID)
	if err != nil {
		return domain.ErrParseUUID
	}

	item := &entities.PantryItem{
		UserID:       userUUID,
		IngredientID: ingredientUUID,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
	}
	return s.pantryRepository.UpsertPantryItem(ctx, item)
}

func (s *pantryService) ListItems(ctx context.Context, userID string) ([]domain.PantryItem, error) {
	rows, err := s.pantryRepository.ListPantryItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.PantryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.PantryItem{
			IngredientID: row.IngredientID.String(),
			Name:         row.Name,
			Quantity:     row.Quantity,
			Unit:         row.Unit,
		})
	}
	return items, nil
}

func (s *pantryService) RemoveItem(ctx context.Context, userID, ingredientID string) error {
	affected, err := s.pantryRepository.DeletePantryItem(ctx, userID, ingredientID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrPantryItemNotFound
	}
	return nil
}
