package moderation

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
	"recipebox/pkg/composition"
	"recipebox/pkg/recipe"
	"recipebox/pkg/user"

	"github.com/google/uuid"
)

func newModerationTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:moderation-test-%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Recipe{},
		&entities.RecipeIngredient{},
		&entities.RecipeStep{},
		&entities.RecipeImage{},
		&entities.Review{},
		&entities.Ingredient{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func newModerationTestService(t *testing.T) (ModerationService, recipe.RecipeRepository, *gorm.DB) {
	t.Helper()
	db := newModerationTestDB(t)
	recipeRepo := recipe.NewRecipeRepository(db)
	svc := NewModerationService(
		recipeRepo,
		composition.NewCompositionRepository(db),
		user.NewUserRepository(db),
	)
	return svc, recipeRepo, db
}

func submitBasicRecipe(t *testing.T, svc ModerationService, title string) *domain.Recipe {
	t.Helper()
	submitted, err := svc.SubmitRecipe(context.Background(), domain.SubmitRecipeRequest{
		Title:        title,
		Instructions: "cook it",
	}, uuid.NewString())
	if err != nil {
		t.Fatalf("submit %q: %v", title, err)
	}
	return submitted
}

func TestSubmitRecipeForcesPending(t *testing.T) {
	ctx := context.Background()
	svc, recipeRepo, _ := newModerationTestService(t)

	submitted := submitBasicRecipe(t, svc, "New Dish")

	if submitted.Status != entities.RecipeStatusPending {
		t.Fatalf("expected pending status, got %q", submitted.Status)
	}

	// Hidden from unprivileged viewers until approved.
	if _, err := recipeRepo.GetRecipeByID(ctx, submitted.ID, false); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("pending recipe must be invisible to unprivileged viewers, got %v", err)
	}
	if _, err := recipeRepo.GetRecipeByID(ctx, submitted.ID, true); err != nil {
		t.Fatalf("pending recipe must be loadable for moderators: %v", err)
	}
}

func TestApproveRecipePublishesAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, recipeRepo, _ := newModerationTestService(t)

	submitted := submitBasicRecipe(t, svc, "New Dish")

	if err := svc.ApproveRecipe(ctx, submitted.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}

	rec, err := recipeRepo.GetRecipeByID(ctx, submitted.ID, false)
	if err != nil {
		t.Fatalf("approved recipe must be publicly visible: %v", err)
	}
	if rec.Status != entities.RecipeStatusApproved {
		t.Fatalf("expected approved status, got %q", rec.Status)
	}

	// Second approval is a no-op success.
	if err := svc.ApproveRecipe(ctx, submitted.ID); err != nil {
		t.Fatalf("repeated approve must succeed, got %v", err)
	}
}

func TestApproveMissingRecipe(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newModerationTestService(t)

	if err := svc.ApproveRecipe(ctx, uuid.NewString()); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound, got %v", err)
	}
}

func TestRejectTransitions(t *testing.T) {
	ctx := context.Background()
	svc, recipeRepo, _ := newModerationTestService(t)

	submitted := submitBasicRecipe(t, svc, "Doubtful Dish")

	if err := svc.RejectRecipe(ctx, submitted.ID); err != nil {
		t.Fatalf("reject: %v", err)
	}
	rec, err := recipeRepo.GetRecipeByID(ctx, submitted.ID, true)
	if err != nil {
		t.Fatalf("load rejected: %v", err)
	}
	if rec.Status != entities.RecipeStatusRejected {
		t.Fatalf("expected rejected status, got %q", rec.Status)
	}

	// Rejecting twice is a no-op.
	if err := svc.RejectRecipe(ctx, submitted.ID); err != nil {
		t.Fatalf("repeated reject must succeed, got %v", err)
	}

	// A published recipe cannot be rejected.
	published := submitBasicRecipe(t, svc, "Good Dish")
	if err := svc.ApproveRecipe(ctx, published.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if err := svc.RejectRecipe(ctx, published.ID); !errors.Is(err, domain.ErrRecipeNotPending) {
		t.Fatalf("expected ErrRecipeNotPending, got %v", err)
	}
}

func TestSubmitEditRequiresOriginal(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newModerationTestService(t)

	_, err := svc.SubmitRecipe(ctx, domain.SubmitRecipeRequest{
		Title:          "Edit Without Target",
		Instructions:   "n/a",
		SubmissionType: entities.SubmissionTypeEdit,
	}, uuid.NewString())
	if !errors.Is(err, domain.ErrOriginalRecipeRequired) {
		t.Fatalf("expected ErrOriginalRecipeRequired, got %v", err)
	}

	_, err = svc.SubmitRecipe(ctx, domain.SubmitRecipeRequest{
		Title:            "Edit Of Ghost",
		Instructions:     "n/a",
		SubmissionType:   entities.SubmissionTypeEdit,
		OriginalRecipeID: uuid.NewString(),
	}, uuid.NewString())
	if !errors.Is(err, domain.ErrOriginalRecipeNotFound) {
		t.Fatalf("expected ErrOriginalRecipeNotFound, got %v", err)
	}
}

func TestEditSubmissionCopiesCompositionAsSnapshot(t *testing.T) {
	ctx := context.Background()
	svc, _, db := newModerationTestService(t)

	original := submitBasicRecipe(t, svc, "Original")
	if err := svc.ApproveRecipe(ctx, original.ID); err != nil {
		t.Fatalf("approve original: %v", err)
	}

	garlic := &entities.Ingredient{ID: uuid.New(), Name: "Garlic"}
	if err := db.Create(garlic).Error; err != nil {
		t.Fatalf("seed ingredient: %v", err)
	}
	if err := db.Create(&entities.RecipeIngredient{
		RecipeID:     uuid.MustParse(original.ID),
		IngredientID: garlic.ID,
		Quantity:     2,
		Unit:         "cloves",
	}).Error; err != nil {
		t.Fatalf("seed composition: %v", err)
	}

	edit, err := svc.SubmitRecipe(ctx, domain.SubmitRecipeRequest{
		Title:            "Original, improved",
		Instructions:     "cook better",
		SubmissionType:   entities.SubmissionTypeEdit,
		OriginalRecipeID: original.ID,
		CopyIngredients:  true,
	}, uuid.NewString())
	if err != nil {
		t.Fatalf("submit edit: %v", err)
	}

	// Changing the original afterwards must not leak into the snapshot.
	if err := db.Model(&entities.RecipeIngredient{}).
		Where("recipe_id = ?", original.ID).
		Update("quantity", 99).Error; err != nil {
		t.Fatalf("mutate original composition: %v", err)
	}

	var copied entities.RecipeIngredient
	if err := db.Where("recipe_id = ?", edit.ID).First(&copied).Error; err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if copied.Quantity != 2 {
		t.Fatalf("snapshot must be independent of later edits, got quantity %v", copied.Quantity)
	}
}

func TestApproveEditSubmissionMergesIntoOriginal(t *testing.T) {
	ctx := context.Background()
	svc, recipeRepo, db := newModerationTestService(t)

	original := submitBasicRecipe(t, svc, "Old Title")
	if err := svc.ApproveRecipe(ctx, original.ID); err != nil {
		t.Fatalf("approve original: %v", err)
	}
	originalID := uuid.MustParse(original.ID)

	// A review on the original must survive the merge.
	if err := db.Create(&entities.Review{
		ID:       uuid.New(),
		RecipeID: originalID,
		UserName: "ana",
		Rating:   4,
	}).Error; err != nil {
		t.Fatalf("seed review: %v", err)
	}

	edit, err := svc.SubmitRecipe(ctx, domain.SubmitRecipeRequest{
		Title:            "New Title",
		Instructions:     "new way",
		Steps:            []string{"prep", "cook", "serve"},
		SubmissionType:   entities.SubmissionTypeEdit,
		OriginalRecipeID: original.ID,
	}, uuid.NewString())
	if err != nil {
		t.Fatalf("submit edit: %v", err)
	}

	if err := svc.ApproveRecipe(ctx, edit.ID); err != nil {
		t.Fatalf("approve edit: %v", err)
	}

	// The original keeps its identity and takes over the submitted content.
	merged, err := recipeRepo.GetRecipeByID(ctx, original.ID, false)
	if err != nil {
		t.Fatalf("load merged: %v", err)
	}
	if merged.Title != "New Title" || merged.Instructions != "new way" {
		t.Fatalf("merge did not apply submitted fields: %+v", merged)
	}

	steps, err := recipeRepo.GetRecipeSteps(ctx, original.ID)
	if err != nil {
		t.Fatalf("load steps: %v", err)
	}
	if len(steps) != 3 || steps[2].Description != "serve" {
		t.Fatalf("merge did not carry over steps: %+v", steps)
	}

	var reviewCount int64
	if err := db.Model(&entities.Review{}).Where("recipe_id = ?", originalID).Count(&reviewCount).Error; err != nil {
		t.Fatalf("count reviews: %v", err)
	}
	if reviewCount != 1 {
		t.Fatalf("original's reviews must survive the merge, got %d", reviewCount)
	}

	// The pending row is gone.
	if _, err := recipeRepo.GetRecipeByID(ctx, edit.ID, true); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("pending edit row must be removed after merge, got %v", err)
	}
}

func TestGetPendingRecipesOldestFirst(t *testing.T) {
	ctx := context.Background()
	svc, _, db := newModerationTestService(t)

	first := submitBasicRecipe(t, svc, "First In Queue")
	second := submitBasicRecipe(t, svc, "Second In Queue")

	// Force distinct creation times; the queue is ordered by them.
	if err := db.Model(&entities.Recipe{}).Where("id = ?", first.ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error; err != nil {
		t.Fatalf("backdate first: %v", err)
	}

	pending, err := svc.GetPendingRecipes(ctx)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending recipes, got %d", len(pending))
	}
	if pending[0].ID != first.ID || pending[1].ID != second.ID {
		t.Fatalf("expected oldest-first ordering, got %+v", pending)
	}
}
