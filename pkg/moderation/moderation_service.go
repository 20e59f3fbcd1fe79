package moderation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"recipebox/domain"
	"recipebox/entities"
	"recipebox/internal/utils/mailing"
	"recipebox/pkg/composition"
	"recipebox/pkg/recipe"
	"recipebox/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// ModerationService owns the submission state machine: recipes enter as
	// pending and leave through an explicit approve or reject transition.
	ModerationService interface {
		SubmitRecipe(ctx context.Context, req domain.SubmitRecipeRequest, userID string) (*domain.Recipe, error)
		ApproveRecipe(ctx context.Context, recipeID string) error
		RejectRecipe(ctx context.Context, recipeID string) error
		GetPendingRecipes(ctx context.Context) ([]domain.Recipe, error)
	}

	moderationService struct {
		recipeRepository      recipe.RecipeRepository
		compositionRepository composition.CompositionRepository
		userRepository        user.UserRepository
	}
)

func NewModerationService(recipeRepository recipe.RecipeRepository, compositionRepository composition.CompositionRepository, userRepository user.UserRepository) ModerationService {
	return &moderationService{
		recipeRepository:      recipeRepository,
		compositionRepository: compositionRepository,
		userRepository:        userRepository,
	}
}

// SubmitRecipe always persists with status pending, whatever the caller sent.
func (s *moderationService) SubmitRecipe(ctx context.Context, req domain.SubmitRecipeRequest, userID string) (*domain.Recipe, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, domain.ErrTitleRequired
	}
	if strings.TrimSpace(req.Instructions) == "" {
		return nil, domain.ErrInstructionsRequired
	}

	submitterUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	submissionType := req.SubmissionType
	if submissionType == "" {
		submissionType = entities.SubmissionTypeNew
	}
	if submissionType != entities.SubmissionTypeNew && submissionType != entities.SubmissionTypeEdit {
		return nil, domain.ErrInvalidSubmissionType
	}

	var originalID *uuid.UUID
	if submissionType == entities.SubmissionTypeEdit {
		if req.OriginalRecipeID == "" {
			return nil, domain.ErrOriginalRecipeRequired
		}
		parsed, err := uuid.Parse(req.OriginalRecipeID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		if _, err := s.recipeRepository.GetRecipeByID(ctx, req.OriginalRecipeID, true); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrOriginalRecipeNotFound
			}
			return nil, err
		}
		originalID = &parsed
	}

	pending := &entities.Recipe{
		ID:               uuid.New(),
		Title:            req.Title,
		Description:      req.Description,
		Instructions:     req.Instructions,
		CookingTime:      req.CookingTime,
		Difficulty:       req.Difficulty,
		CuisineType:      req.CuisineType,
		CreatedBy:        submitterUUID,
		Status:           entities.RecipeStatusPending,
		SubmissionType:   submissionType,
		OriginalRecipeID: originalID,
	}
	if err := s.recipeRepository.CreateRecipe(ctx, pending); err != nil {
		return nil, err
	}

	if len(req.Steps) > 0 {
		if err := s.recipeRepository.ReplaceRecipeSteps(ctx, pending.ID.String(), req.Steps); err != nil {
			return nil, err
		}
	}

	// Seed the submission with a snapshot of the original's composition.
	// It is a copy: edits to the original afterwards do not propagate.
	if req.CopyIngredients && originalID != nil {
		if err := s.compositionRepository.CopyRecipeIngredients(ctx, originalID.String(), pending.ID.String()); err != nil {
			return nil, err
		}
	}

	res := recipe.ToRecipeResponse(pending)
	return &res, nil
}

// ApproveRecipe is idempotent: approving an already-approved recipe is a
// no-op success. Approving an edit submission lands it on the original
// recipe; approving anything else publishes the row itself.
func (s *moderationService) ApproveRecipe(ctx context.Context, recipeID string) error {
	rec, err := s.recipeRepository.GetRecipeByID(ctx, recipeID, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if rec.Status == entities.RecipeStatusApproved {
		return nil
	}

	if rec.SubmissionType == entities.SubmissionTypeEdit && rec.OriginalRecipeID != nil {
		if err := s.recipeRepository.MergeEditSubmission(ctx, rec); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrOriginalRecipeNotFound
			}
			return err
		}
	} else {
		if err := s.recipeRepository.UpdateRecipeStatus(ctx, recipeID, entities.RecipeStatusApproved); err != nil {
			return err
		}
	}

	s.notifySubmitter(ctx, rec, entities.RecipeStatusApproved)
	return nil
}

// RejectRecipe moves a pending recipe to the rejected terminal state.
// Rejecting twice is a no-op; rejecting a published recipe is refused since
// no approved -> rejected transition is defined.
func (s *moderationService) RejectRecipe(ctx context.Context, recipeID string) error {
	rec, err := s.recipeRepository.GetRecipeByID(ctx, recipeID, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if rec.Status == entities.RecipeStatusRejected {
		return nil
	}
	if rec.Status == entities.RecipeStatusApproved {
		return domain.ErrRecipeNotPending
	}

	if err := s.recipeRepository.UpdateRecipeStatus(ctx, recipeID, entities.RecipeStatusRejected); err != nil {
		return err
	}

	s.notifySubmitter(ctx, rec, entities.RecipeStatusRejected)
	return nil
}

func (s *moderationService) GetPendingRecipes(ctx context.Context) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepository.GetRecipesByStatus(ctx, entities.RecipeStatusPending)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Recipe, 0, len(recipes))
	for _, rec := range recipes {
		result = append(result, recipe.ToRecipeResponse(rec))
	}
	return result, nil
}

// notifySubmitter mails the moderation outcome to the submitting user.
// Best-effort: a mail failure never fails the transition.
func (s *moderationService) notifySubmitter(ctx context.Context, rec *entities.Recipe, outcome string) {
	submitter, err := s.userRepository.GetUserByID(ctx, rec.CreatedBy.String())
	if err != nil {
		log.Printf("moderation: could not load submitter for recipe %s: %v", rec.ID, err)
		return
	}

	subject := fmt.Sprintf("Your recipe %q has been %s", rec.Title, outcome)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your submission <b>%s</b> has been %s by our moderators.</p>",
		submitter.Name, rec.Title, outcome,
	)
	if err := mailing.SendMail(submitter.Email, subject, body); err != nil {
		log.Printf("moderation: could not send notification for recipe %s: %v", rec.ID, err)
	}
}
