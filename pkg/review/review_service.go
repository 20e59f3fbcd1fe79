package review

import (
	"context"
	"strings"

	"recipebox/domain"
	"recipebox/entities"

	"github.com/google/uuid"
)

type (
	// ReviewService is append-only: reviews are never edited or deduplicated,
	// and the same user name may review the same recipe repeatedly.
	ReviewService interface {
		SubmitReview(ctx context.Context, req domain.SubmitReviewRequest) (*domain.Review, error)
		GetReviewsForRecipe(ctx context.Context, recipeID string) ([]domain.Review, error)
	}

	reviewService struct {
		reviewRepository ReviewRepository
	}
)

func NewReviewService(reviewRepository ReviewRepository) ReviewService {
	return &reviewService{reviewRepository: reviewRepository}
}

func toReviewResponse(review *entities.Review) domain.Review {
	return domain.Review{
		ID:        review.ID.String(),
		RecipeID:  review.RecipeID.String(),
		UserName:  review.UserName,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}

func (s *reviewService) SubmitReview(ctx context.Context, req domain.SubmitReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, domain.ErrInvalidRating
	}
	if strings.TrimSpace(req.UserName) == "" {
		return nil, domain.ErrUserNameMissing
	}

	recipeUUID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	review := &entities.Review{
		ID:       uuid.New(),
		RecipeID: recipeUUID,
		UserName: req.UserName,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}
	if err := s.reviewRepository.CreateReview(ctx, review); err != nil {
		return nil, err
	}

	res := toReviewResponse(review)
	return &res, nil
}

func (s *reviewService) GetReviewsForRecipe(ctx context.Context, recipeID string) ([]domain.Review, error) {
	reviews, err := s.reviewRepository.GetReviewsByRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Review, 0, len(reviews))
	for _, review := range reviews {
		result = append(result, toReviewResponse(review))
	}
	return result, nil
}
