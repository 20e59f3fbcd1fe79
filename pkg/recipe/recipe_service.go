package recipe

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"recipebox/domain"
	"recipebox/entities"
	"recipebox/internal/utils/storage"
	"recipebox/pkg/composition"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, createdBy string) (*domain.Recipe, error)
		GetRecipes(ctx context.Context, viewerRole string) ([]domain.Recipe, error)
		GetRecipeDetail(ctx context.Context, recipeID, viewerRole string) (*domain.RecipeDetail, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest) (*domain.Recipe, error)
		DeleteRecipe(ctx context.Context, recipeID string) error
		SearchRecipes(ctx context.Context, query, viewerRole string) ([]domain.Recipe, error)
		GetRecipeSteps(ctx context.Context, recipeID, viewerRole string) ([]domain.RecipeStep, error)
		GetRecipeImage(ctx context.Context, recipeID, viewerRole string) (*domain.RecipeImage, error)
		UploadRecipeImage(ctx context.Context, recipeID string, file *multipart.FileHeader) (*domain.RecipeImage, error)
	}

	recipeService struct {
		recipeRepository      RecipeRepository
		compositionRepository composition.CompositionRepository
		s3                    storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, compositionRepository composition.CompositionRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository:      recipeRepository,
		compositionRepository: compositionRepository,
		s3:                    s3,
	}
}

func ToRecipeResponse(recipe *entities.Recipe) domain.Recipe {
	res := domain.Recipe{
		ID:             recipe.ID.String(),
		Title:          recipe.Title,
		Description:    recipe.Description,
		Instructions:   recipe.Instructions,
		CookingTime:    recipe.CookingTime,
		Difficulty:     recipe.Difficulty,
		CuisineType:    recipe.CuisineType,
		CreatedBy:      recipe.CreatedBy.String(),
		Status:         recipe.Status,
		SubmissionType: recipe.SubmissionType,
		CreatedAt:      recipe.CreatedAt,
		UpdatedAt:      recipe.UpdatedAt,
	}
	if recipe.OriginalRecipeID != nil {
		res.OriginalRecipeID = recipe.OriginalRecipeID.String()
	}
	return res
}

// CreateRecipe is the direct, admin-equivalent path: the recipe is published
// immediately. Submissions go through the moderation service instead.
func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, createdBy string) (*domain.Recipe, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, domain.ErrTitleRequired
	}
	if strings.TrimSpace(req.Instructions) == "" {
		return nil, domain.ErrInstructionsRequired
	}

	creatorUUID, err := uuid.Parse(createdBy)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	recipe := &entities.Recipe{
		ID:           uuid.New(),
		Title:        req.Title,
		Description:  req.Description,
		Instructions: req.Instructions,
		CookingTime:  req.CookingTime,
		Difficulty:   req.Difficulty,
		CuisineType:  req.CuisineType,
		CreatedBy:    creatorUUID,
		Status:       entities.RecipeStatusApproved,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return nil, err
	}

	if len(req.Steps) > 0 {
		if err := s.recipeRepository.ReplaceRecipeSteps(ctx, recipe.ID.String(), req.Steps); err != nil {
			return nil, err
		}
	}

	res := ToRecipeResponse(recipe)
	return &res, nil
}

func (s *recipeService) GetRecipes(ctx context.Context, viewerRole string) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, domain.IsPrivileged(viewerRole))
	if err != nil {
		return nil, err
	}

	result := make([]domain.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, ToRecipeResponse(recipe))
	}
	return result, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID, viewerRole string) (*domain.RecipeDetail, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID, domain.IsPrivileged(viewerRole))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	rows, err := s.compositionRepository.ListRecipeIngredients(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	ingredients := make([]domain.CompositionItem, 0, len(rows))
	for _, row := range rows {
		ingredients = append(ingredients, domain.CompositionItem{
			IngredientID: row.IngredientID.String(),
			Name:         row.Name,
			Quantity:     row.Quantity,
			Unit:         row.Unit,
		})
	}

	stepRows, err := s.recipeRepository.GetRecipeSteps(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	steps := make([]domain.RecipeStep, 0, len(stepRows))
	for _, step := range stepRows {
		steps = append(steps, domain.RecipeStep{
			StepNumber:  step.StepNumber,
			Description: step.Description,
		})
	}

	detail := &domain.RecipeDetail{
		Recipe:      ToRecipeResponse(recipe),
		Ingredients: ingredients,
		Steps:       steps,
	}

	image, err := s.recipeRepository.GetRecipeImage(ctx, recipeID)
	if err == nil {
		detail.ImageURL = image.ImageURL
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return detail, nil
}

// UpdateRecipe applies a partial update: only fields carried in the request
// replace stored values, and an explicitly supplied empty string counts as a
// replacement.
func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest) (*domain.Recipe, error) {
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Instructions != nil {
		fields["instructions"] = *req.Instructions
	}
	if req.CookingTime != nil {
		fields["cooking_time"] = *req.CookingTime
	}
	if req.Difficulty != nil {
		fields["difficulty"] = *req.Difficulty
	}
	if req.CuisineType != nil {
		fields["cuisine_type"] = *req.CuisineType
	}

	if err := s.recipeRepository.UpdateRecipeFields(ctx, recipeID, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	if req.Steps != nil {
		if err := s.recipeRepository.ReplaceRecipeSteps(ctx, recipeID, *req.Steps); err != nil {
			return nil, err
		}
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID, true)
	if err != nil {
		return nil, err
	}
	res := ToRecipeResponse(recipe)
	return &res, nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string) error {
	if err := s.recipeRepository.DeleteRecipeCascade(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	return nil
}

// SearchRecipes answers the union query. An empty query returns an empty
// result rather than falling back to a full listing.
func (s *recipeService) SearchRecipes(ctx context.Context, query, viewerRole string) ([]domain.Recipe, error) {
	if strings.TrimSpace(query) == "" {
		return []domain.Recipe{}, nil
	}

	recipes, err := s.recipeRepository.SearchRecipes(ctx, query, domain.IsPrivileged(viewerRole))
	if err != nil {
		return nil, err
	}

	result := make([]domain.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, ToRecipeResponse(recipe))
	}
	return result, nil
}

func (s *recipeService) GetRecipeSteps(ctx context.Context, recipeID, viewerRole string) ([]domain.RecipeStep, error) {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID, domain.IsPrivileged(viewerRole)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	stepRows, err := s.recipeRepository.GetRecipeSteps(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	steps := make([]domain.RecipeStep, 0, len(stepRows))
	for _, step := range stepRows {
		steps = append(steps, domain.RecipeStep{
			StepNumber:  step.StepNumber,
			Description: step.Description,
		})
	}
	return steps, nil
}

func (s *recipeService) GetRecipeImage(ctx context.Context, recipeID, viewerRole string) (*domain.RecipeImage, error) {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID, domain.IsPrivileged(viewerRole)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	image, err := s.recipeRepository.GetRecipeImage(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeImageNotFound
		}
		return nil, err
	}

	return &domain.RecipeImage{
		RecipeID: image.RecipeID.String(),
		ImageURL: image.ImageURL,
	}, nil
}

// UploadRecipeImage hands the binary off to the external object store and
// persists only the returned public URL.
func (s *recipeService) UploadRecipeImage(ctx context.Context, recipeID string, file *multipart.FileHeader) (*domain.RecipeImage, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	objectKey, err := s.s3.UploadFile(
		fmt.Sprintf("recipe-%s", recipe.ID.String()),
		file,
		"recipes",
		storage.AllowImage...,
	)
	if err != nil {
		return nil, err
	}

	image := &entities.RecipeImage{
		RecipeID: recipe.ID,
		ImageURL: s.s3.GetPublicLinkKey(objectKey),
	}
	if err := s.recipeRepository.SaveRecipeImage(ctx, image); err != nil {
		return nil, err
	}

	return &domain.RecipeImage{
		RecipeID: image.RecipeID.String(),
		ImageURL: image.ImageURL,
	}, nil
}
