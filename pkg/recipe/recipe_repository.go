package recipe

import (
	"context"
	"errors"
	"strings"
	"time"

	"recipebox/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string, privileged bool) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, privileged bool) ([]*entities.Recipe, error)
		GetRecipesByStatus(ctx context.Context, status string) ([]*entities.Recipe, error)
		UpdateRecipeFields(ctx context.Context, id string, fields map[string]interface{}) error
		UpdateRecipeStatus(ctx context.Context, id, status string) error
		DeleteRecipeCascade(ctx context.Context, id string) error
		SearchRecipes(ctx context.Context, query string, privileged bool) ([]*entities.Recipe, error)
		MergeEditSubmission(ctx context.Context, pending *entities.Recipe) error

		ReplaceRecipeSteps(ctx context.Context, recipeID string, steps []string) error
		GetRecipeSteps(ctx context.Context, recipeID string) ([]*entities.RecipeStep, error)
		GetRecipeImage(ctx context.Context, recipeID string) (*entities.RecipeImage, error)
		SaveRecipeImage(ctx context.Context, image *entities.RecipeImage) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

// GetRecipeByID treats hidden recipes as absent for non-privileged viewers:
// the moderation state doubles as an access-control boundary, so a pending or
// rejected recipe is a record-not-found, not a filtered row.
func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string, privileged bool) (*entities.Recipe, error) {
	query := r.db.WithContext(ctx).Where("id = ?", id)
	if !privileged {
		query = query.Where("status = ?", entities.RecipeStatusApproved)
	}

	var recipe entities.Recipe
	if err := query.First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, privileged bool) ([]*entities.Recipe, error) {
	query := r.db.WithContext(ctx)
	if !privileged {
		query = query.Where("status = ?", entities.RecipeStatusApproved)
	}

	var recipes []*entities.Recipe
	if err := query.Order("created_at desc").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipesByStatus(ctx context.Context, status string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) UpdateRecipeFields(ctx context.Context, id string, fields map[string]interface{}) error {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return err
	}

	fields["updated_at"] = time.Now()
	return r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *recipeRepository) UpdateRecipeStatus(ctx context.Context, id, status string) error {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

// DeleteRecipeCascade removes the recipe and every dependent row inside one
// transaction, so a partial failure never leaves orphans behind.
func (r *recipeRepository) DeleteRecipeCascade(ctx context.Context, id string) error {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeStep{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeImage{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Recipe{}).Error
	})
}

// SearchRecipes returns the set union of recipes whose title or description
// contains the query and recipes composed of an ingredient whose name
// contains it. The subquery keeps it a single parameterized statement, which
// also eliminates duplicates across the two branches.
func (r *recipeRepository) SearchRecipes(ctx context.Context, query string, privileged bool) ([]*entities.Recipe, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	byIngredient := r.db.
		Model(&entities.RecipeIngredient{}).
		Select("recipe_ingredients.recipe_id").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("LOWER(ingredients.name) LIKE ?", pattern)

	q := r.db.WithContext(ctx).
		Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR id IN (?))", pattern, pattern, byIngredient)
	if !privileged {
		q = q.Where("status = ?", entities.RecipeStatusApproved)
	}

	var recipes []*entities.Recipe
	if err := q.Order("created_at desc").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// MergeEditSubmission lands an approved edit submission onto its original
// recipe: the original keeps its identity, reviews and image, takes over the
// submitted fields, steps and composition, and the pending row disappears.
// All of it happens in one transaction.
func (r *recipeRepository) MergeEditSubmission(ctx context.Context, pending *entities.Recipe) error {
	if pending.OriginalRecipeID == nil {
		return errors.New("edit submission has no original recipe")
	}
	originalID := *pending.OriginalRecipeID

	var original entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", originalID).First(&original).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.Recipe{}).
			Where("id = ?", originalID).
			Updates(map[string]interface{}{
				"title":        pending.Title,
				"description":  pending.Description,
				"instructions": pending.Instructions,
				"cooking_time": pending.CookingTime,
				"difficulty":   pending.Difficulty,
				"cuisine_type": pending.CuisineType,
				"updated_at":   time.Now(),
			}).Error; err != nil {
			return err
		}

		// Replace composition and steps with the submission's versions.
		if err := tx.Where("recipe_id = ?", originalID).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&entities.RecipeIngredient{}).
			Where("recipe_id = ?", pending.ID).
			Update("recipe_id", originalID).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", originalID).Delete(&entities.RecipeStep{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&entities.RecipeStep{}).
			Where("recipe_id = ?", pending.ID).
			Update("recipe_id", originalID).Error; err != nil {
			return err
		}

		// Drop whatever else still hangs off the pending row, then the row
		// itself.
		if err := tx.Where("recipe_id = ?", pending.ID).Delete(&entities.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", pending.ID).Delete(&entities.RecipeImage{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", pending.ID).Delete(&entities.Recipe{}).Error
	})
}

func (r *recipeRepository) ReplaceRecipeSteps(ctx context.Context, recipeID string, steps []string) error {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&entities.RecipeStep{}).Error; err != nil {
			return err
		}
		for i, description := range steps {
			step := &entities.RecipeStep{
				RecipeID:    recipeUUID,
				StepNumber:  i + 1,
				Description: description,
			}
			if err := tx.Create(step).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *recipeRepository) GetRecipeSteps(ctx context.Context, recipeID string) ([]*entities.RecipeStep, error) {
	var steps []*entities.RecipeStep
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("step_number asc").
		Find(&steps).Error; err != nil {
		return nil, err
	}
	return steps, nil
}

func (r *recipeRepository) GetRecipeImage(ctx context.Context, recipeID string) (*entities.RecipeImage, error) {
	var image entities.RecipeImage
	if err := r.db.WithContext(ctx).Where("recipe_id = ?", recipeID).First(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// SaveRecipeImage keeps at most one image row per recipe.
func (r *recipeRepository) SaveRecipeImage(ctx context.Context, image *entities.RecipeImage) error {
	var existing entities.RecipeImage
	err := r.db.WithContext(ctx).Where("recipe_id = ?", image.RecipeID).First(&existing).Error
	if err == nil {
		return r.db.WithContext(ctx).
			Model(&entities.RecipeImage{}).
			Where("recipe_id = ?", image.RecipeID).
			Update("image_url", image.ImageURL).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.db.WithContext(ctx).Create(image).Error
}
