package composition

import (
	"context"
	"errors"

	"recipebox/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CompositionRepository interface {
		UpsertRecipeIngredient(ctx context.Context, row *entities.RecipeIngredient) error
		UpdateRecipeIngredient(ctx context.Context, recipeID, ingredientID string, quantity float64, unit string) (int64, error)
		DeleteRecipeIngredient(ctx context.Context, recipeID, ingredientID string) (int64, error)
		ListRecipeIngredients(ctx context.Context, recipeID string) ([]*RecipeIngredientDetail, error)
		CopyRecipeIngredients(ctx context.Context, fromRecipeID, toRecipeID string) error
		CountByIngredient(ctx context.Context, ingredientID string) (int64, error)
	}

	// RecipeIngredientDetail is a composition row joined with the catalog
	// display name.
	RecipeIngredientDetail struct {
		IngredientID uuid.UUID
		Name         string
		Quantity     float64
		Unit         string
	}

	compositionRepository struct {
		db *gorm.DB
	}
)

func NewCompositionRepository(db *gorm.DB) CompositionRepository {
	return &compositionRepository{db: db}
}

// UpsertRecipeIngredient keeps the (recipe_id, ingredient_id) pair unique:
// re-adding an ingredient updates the stored quantity and unit instead of
// creating a duplicate row.
func (r *compositionRepository) UpsertRecipeIngredient(ctx context.Context, row *entities.RecipeIngredient) error {
	var existing entities.RecipeIngredient
	err := r.db.WithContext(ctx).
		Where("recipe_id = ? AND ingredient_id = ?", row.RecipeID, row.IngredientID).
		First(&existing).Error
	if err == nil {
		return r.db.WithContext(ctx).
			Model(&entities.RecipeIngredient{}).
			Where("recipe_id = ? AND ingredient_id = ?", row.RecipeID, row.IngredientID).
			Updates(map[string]interface{}{
				"quantity": row.Quantity,
				"unit":     row.Unit,
			}).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.db.WithContext(ctx).Create(row).Error
}

func (r *compositionRepository) UpdateRecipeIngredient(ctx context.Context, recipeID, ingredientID string, quantity float64, unit string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.RecipeIngredient{}).
		Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).
		Updates(map[string]interface{}{
			"quantity": quantity,
			"unit":     unit,
		})
	return result.RowsAffected, result.Error
}

func (r *compositionRepository) DeleteRecipeIngredient(ctx context.Context, recipeID, ingredientID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).
		Delete(&entities.RecipeIngredient{})
	return result.RowsAffected, result.Error
}

func (r *compositionRepository) ListRecipeIngredients(ctx context.Context, recipeID string) ([]*RecipeIngredientDetail, error) {
	var rows []*RecipeIngredientDetail
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeIngredient{}).
		Select("recipe_ingredients.ingredient_id, ingredients.name, recipe_ingredients.quantity, recipe_ingredients.unit").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("recipe_ingredients.recipe_id = ?", recipeID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CopyRecipeIngredients duplicates the source recipe's current composition
// onto the target recipe. The copies are independent rows; later edits to the
// source do not propagate.
func (r *compositionRepository) CopyRecipeIngredients(ctx context.Context, fromRecipeID, toRecipeID string) error {
	var rows []*entities.RecipeIngredient
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", fromRecipeID).
		Find(&rows).Error; err != nil {
		return err
	}

	toUUID, err := uuid.Parse(toRecipeID)
	if err != nil {
		return err
	}

	for _, row := range rows {
		copied := &entities.RecipeIngredient{
			RecipeID:     toUUID,
			IngredientID: row.IngredientID,
			Quantity:     row.Quantity,
			Unit:         row.Unit,
		}
		if err := r.UpsertRecipeIngredient(ctx, copied); err != nil {
			return err
		}
	}
	return nil
}

func (r *compositionRepository) CountByIngredient(ctx context.Context, ingredientID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeIngredient{}).
		Where("ingredient_id = ?", ingredientID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
