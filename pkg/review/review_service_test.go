package review

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"recipebox/domain"
	"recipebox/entities"

	"github.com/google/uuid"
)

func newReviewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:review-test-%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entities.Review{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestSubmitReviewRatingBounds(t *testing.T) {
	ctx := context.Background()
	db := newReviewTestDB(t)
	svc := NewReviewService(NewReviewRepository(db))

	recipeID := uuid.NewString()

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.SubmitReview(ctx, domain.SubmitReviewRequest{
			RecipeID: recipeID,
			UserName: "ana",
			Rating:   rating,
		})
		if !errors.Is(err, domain.ErrInvalidRating) {
			t.Fatalf("rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}

	for _, rating := range []int{1, 5} {
		if _, err := svc.SubmitReview(ctx, domain.SubmitReviewRequest{
			RecipeID: recipeID,
			UserName: "ana",
			Rating:   rating,
		}); err != nil {
			t.Fatalf("rating %d: %v", rating, err)
		}
	}
}

func TestSubmitReviewRequiresUserName(t *testing.T) {
	ctx := context.Background()
	db := newReviewTestDB(t)
	svc := NewReviewService(NewReviewRepository(db))

	_, err := svc.SubmitReview(ctx, domain.SubmitReviewRequest{
		RecipeID: uuid.NewString(),
		UserName: "   ",
		Rating:   3,
	})
	if !errors.Is(err, domain.ErrUserNameMissing) {
		t.Fatalf("expected ErrUserNameMissing, got %v", err)
	}
}

func TestReviewsAreAppendOnlyAndNewestFirst(t *testing.T) {
	ctx := context.Background()
	db := newReviewTestDB(t)
	svc := NewReviewService(NewReviewRepository(db))

	recipeID := uuid.New()

	// Same user reviewing the same recipe twice produces two rows.
	older := &entities.Review{
		ID:        uuid.New(),
		RecipeID:  recipeID,
		UserName:  "ana",
		Rating:    2,
		Comment:   "first impression",
		CreatedAt: time.Now().Add(-time.Hour),
	}
	if err := db.Create(older).Error; err != nil {
		t.Fatalf("seed older review: %v", err)
	}
	if _, err := svc.SubmitReview(ctx, domain.SubmitReviewRequest{
		RecipeID: recipeID.String(),
		UserName: "ana",
		Rating:   5,
		Comment:  "it grew on me",
	}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	reviews, err := svc.GetReviewsForRecipe(ctx, recipeID.String())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(reviews) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(reviews))
	}
	if reviews[0].Comment != "it grew on me" {
		t.Fatalf("expected newest review first, got %+v", reviews)
	}
}
