package pantry

import (
	"context"
	"errors"

	"recipebox/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PantryRepository interface {
		UpsertPantryItem(ctx context.Context, item *entities.PantryItem) error
		ListPantryItems(ctx context.Context, userID string) ([]*PantryItemDetail, error)
		DeletePantryItem(ctx context.Context, userID, ingredientID string) (int64, error)
	}

	PantryItemDetail struct {
		IngredientID uuid.UUID
		Name         string
		Quantity     float64
		Unit         string
	}

	pantryRepository struct {
		db *gorm.DB
	}
)

func NewPantryRepository(db *gorm.DB) PantryRepository {
	return &pantryRepository{db: db}
}

func (r *pantryRepository) UpsertPantryItem(ctx context.Context, item *entities.PantryItem) error {
	var existing entities.PantryItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND ingredient_id = ?", item.UserID, item.IngredientID).
		First(&existing).Error
	if err == nil {
		return r.db.WithContext(ctx).
			Model(&entities.PantryItem{}).
			Where("user_id = ? AND ingredient_id = ?", item.UserID, item.IngredientID).
			Updates(map[string]interface{}{
				"quantity": item.Quantity,
				"unit":     item.Unit,
			}).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.db.WithContext(ctx).Create(item).Error
}

func (r *pantryRepository) ListPantryItems(ctx context.Context, userID string) ([]*PantryItemDetail, error) {
	var rows []*PantryItemDetail
	if err := r.db.WithContext(ctx).
		Model(&entities.PantryItem{}).
		Select("pantry_items.ingredient_id, ingredients.name, pantry_items.quantity, pantry_items.unit").
		Joins("JOIN ingredients ON ingredients.id = pantry_items.ingredient_id").
		Where("pantry_items.user_id = ?", userID).
		Order("ingredients.name asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *pantryRepository) DeletePantryItem(ctx context.Context, userID, ingredientID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND ingredient_id = ?", userID, ingredientID).
		Delete(&entities.PantryItem{})
	return result.RowsAffected, result.Error
}
