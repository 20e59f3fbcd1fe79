package recipe

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

	"github.com/google/uuid"
)

func newRecipeTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:recipe-test-%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
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

func newRecipeTestService(t *testing.T) (RecipeService, RecipeRepository, *gorm.DB) {
	t.Helper()
	db := newRecipeTestDB(t)
	repo := NewRecipeRepository(db)
	compRepo := composition.NewCompositionRepository(db)
	return NewRecipeService(repo, compRepo, nil), repo, db
}

func seedRecipe(t *testing.T, db *gorm.DB, title, description, status string) *entities.Recipe {
	t.Helper()
	rec := &entities.Recipe{
		ID:           uuid.New(),
		Title:        title,
		Description:  description,
		Instructions: "mix and cook",
		CreatedBy:    uuid.New(),
		Status:       status,
	}
	if err := db.Create(rec).Error; err != nil {
		t.Fatalf("seed recipe: %v", err)
	}
	return rec
}

func seedIngredient(t *testing.T, db *gorm.DB, name string) *entities.Ingredient {
	t.Helper()
	ing := &entities.Ingredient{ID: uuid.New(), Name: name}
	if err := db.Create(ing).Error; err != nil {
		t.Fatalf("seed ingredient: %v", err)
	}
	return ing
}

func TestGetRecipeDetailHidesPendingFromGuests(t *testing.T) {
	ctx := context.Background()
	svc, _, db := newRecipeTestService(t)

	rec := seedRecipe(t, db, "New Dish", "", entities.RecipeStatusPending)

	if _, err := svc.GetRecipeDetail(ctx, rec.ID.String(), domain.RoleGuest); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound for guest, got %v", err)
	}
	if _, err := svc.GetRecipeDetail(ctx, rec.ID.String(), domain.RoleUser); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound for regular user, got %v", err)
	}

	detail, err := svc.GetRecipeDetail(ctx, rec.ID.String(), domain.RoleAdmin)
	if err != nil {
		t.Fatalf("admin detail: %v", err)
	}
	if detail.Status != entities.RecipeStatusPending {
		t.Fatalf("expected pending status, got %q", detail.Status)
	}
}

func TestGetRecipesFiltersUnapprovedForGuests(t *testing.T) {
	ctx := context.Background()
	svc, _, db := newRecipeTestService(t)

	seedRecipe(t, db, "Published", "", entities.RecipeStatusApproved)
	seedRecipe(t, db, "Waiting", "", entities.RecipeStatusPending)
	seedRecipe(t, db, "Refused", "", entities.RecipeStatusRejected)

	visible, err := svc.GetRecipes(ctx, domain.RoleGuest)
	if err != nil {
		t.Fatalf("list as guest: %v", err)
	}
	if len(visible) != 1 || visible[0].Title != "Published" {
		t.Fatalf("expected only the approved recipe, got %+v", visible)
	}

	all, err := svc.GetRecipes(ctx, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("list as admin: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 recipes for admin, got %d", len(all))
	}
}

func TestSearchRecipesUnionWithoutDuplicates(t *testing.T) {
	ctx := context.Background()
	svc, _, db := newRecipeTestService(t)

	garlic := seedIngredient(t, db, "Garlic")

	// Matches both branches: title contains the query and so does an
	// ingredient of its composition.
	both := seedRecipe(t, db, "Garlic Bread", "", entities.RecipeStatusApproved)
	if err := db.Create(&entities.RecipeIngredient{
		RecipeID:     both.ID,
		IngredientID: garlic.ID,
		Quantity:     2,
		Unit:         "cloves",
	}).Error; err != nil {
		t.Fatalf("seed composition: %v", err)
	}

	// Matches only through its composition.
	soup := seedRecipe(t, db, "Evening Soup", "", entities.RecipeStatusApproved)
	if err := db.Create(&entities.RecipeIngredient{
		RecipeID:     soup.ID,
		IngredientID: garlic.ID,
		Quantity:     1,
		Unit:         "clove",
	}).Error; err != nil {
		t.Fatalf("seed composition: %v", err)
	}

	seedRecipe(t, db, "Plain Rice", "", entities.RecipeStatusApproved)

	results, err := svc.SearchRecipes(ctx, "gArLiC", domain.RoleGuest)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d: %+v", len(results), results)
	}
	seen := map[string]bool{}
	for _, r := range results {
		if seen[r.ID] {
			t.Fatalf("duplicate recipe %s in search results", r.ID)
		}
		seen[r.ID] = true
	}
}

func TestSearchRecipesEmptyQueryReturnsNothing(t *testing.T) {
	ctx := context.Background()
	svc, _, db := newRecipeTestService(t)

	seedRecipe(t, db, "Anything", "", entities.RecipeStatusApproved)

	results, err := svc.SearchRecipes(ctx, "   ", domain.RoleGuest)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected empty result for blank query, got %d", len(results))
	}
}

func TestSearchRecipesHidesPendingMatches(t *testing.T) {
	ctx := context.Background()
	svc, _, db := newRecipeTestService(t)

	seedRecipe(t, db, "Garlic Stew", "", entities.RecipeStatusPending)

	results, err := svc.SearchRecipes(ctx, "garlic", domain.RoleGuest)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("pending recipe leaked into guest search: %+v", results)
	}

	adminResults, err := svc.SearchRecipes(ctx, "garlic", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("admin search: %v", err)
	}
	if len(adminResults) != 1 {
		t.Fatalf("expected pending match for admin, got %d", len(adminResults))
	}
}

func TestUpdateRecipeExplicitEmptyStringReplaces(t *testing.T) {
	ctx := context.Background()
	svc, _, db := newRecipeTestService(t)

	rec := seedRecipe(t, db, "Keep Me", "old description", entities.RecipeStatusApproved)

	empty := ""
	updated, err := svc.UpdateRecipe(ctx, rec.ID.String(), domain.UpdateRecipeRequest{
		Description: &empty,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Description != "" {
		t.Fatalf("expected description cleared, got %q", updated.Description)
	}
	if updated.Title != "Keep Me" {
		t.Fatalf("omitted title must stay untouched, got %q", updated.Title)
	}
}

func TestUpdateRecipeMissing(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newRecipeTestService(t)

	title := "whatever"
	if _, err := svc.UpdateRecipe(ctx, uuid.NewString(), domain.UpdateRecipeRequest{Title: &title}); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound, got %v", err)
	}
}

func TestDeleteRecipeCascades(t *testing.T) {
	ctx := context.Background()
	svc, repo, db := newRecipeTestService(t)

	ing := seedIngredient(t, db, "Flour")
	rec := seedRecipe(t, db, "Bread", "", entities.RecipeStatusApproved)

	if err := db.Create(&entities.RecipeIngredient{RecipeID: rec.ID, IngredientID: ing.ID, Quantity: 500, Unit: "g"}).Error; err != nil {
		t.Fatalf("seed composition: %v", err)
	}
	if err := repo.ReplaceRecipeSteps(ctx, rec.ID.String(), []string{"knead", "bake"}); err != nil {
		t.Fatalf("seed steps: %v", err)
	}
	if err := db.Create(&entities.Review{ID: uuid.New(), RecipeID: rec.ID, UserName: "ana", Rating: 5}).Error; err != nil {
		t.Fatalf("seed review: %v", err)
	}
	if err := db.Create(&entities.RecipeImage{RecipeID: rec.ID, ImageURL: "https://example.com/bread.jpg"}).Error; err != nil {
		t.Fatalf("seed image: %v", err)
	}

	if err := svc.DeleteRecipe(ctx, rec.ID.String()); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var count int64
	for _, model := range []interface{}{
		&entities.RecipeIngredient{},
		&entities.RecipeStep{},
		&entities.Review{},
		&entities.RecipeImage{},
	} {
		if err := db.Model(model).Where("recipe_id = ?", rec.ID).Count(&count).Error; err != nil {
			t.Fatalf("count dependents: %v", err)
		}
		if count != 0 {
			t.Fatalf("expected no dependent rows of %T after delete, got %d", model, count)
		}
	}

	// The catalog entry is untouched.
	if err := db.Model(&entities.Ingredient{}).Where("id = ?", ing.ID).Count(&count).Error; err != nil {
		t.Fatalf("count ingredients: %v", err)
	}
	if count != 1 {
		t.Fatalf("ingredient catalog row must survive recipe deletion")
	}

	if err := svc.DeleteRecipe(ctx, rec.ID.String()); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound on second delete, got %v", err)
	}
}

func TestCreateRecipeValidatesRequiredFields(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newRecipeTestService(t)

	creator := uuid.NewString()

	if _, err := svc.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Title:        "   ",
		Instructions: "cook",
	}, creator); !errors.Is(err, domain.ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}

	if _, err := svc.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Title:        "Soup",
		Instructions: " ",
	}, creator); !errors.Is(err, domain.ErrInstructionsRequired) {
		t.Fatalf("expected ErrInstructionsRequired, got %v", err)
	}

	created, err := svc.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Title:        "Soup",
		Instructions: "boil",
		Steps:        []string{"chop", "boil"},
	}, creator)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != entities.RecipeStatusApproved {
		t.Fatalf("direct creation must publish immediately, got %q", created.Status)
	}

	steps, err := svc.GetRecipeSteps(ctx, created.ID, domain.RoleGuest)
	if err != nil {
		t.Fatalf("get steps: %v", err)
	}
	if len(steps) != 2 || steps[0].StepNumber != 1 || steps[1].Description != "boil" {
		t.Fatalf("unexpected steps: %+v", steps)
	}
}

func TestGetRecipeImageMissing(t *testing.T) {
	ctx := context.Background()
	svc, _, db := newRecipeTestService(t)

	rec := seedRecipe(t, db, "No Photo", "", entities.RecipeStatusApproved)

	if _, err := svc.GetRecipeImage(ctx, rec.ID.String(), domain.RoleGuest); !errors.Is(err, domain.ErrRecipeImageNotFound) {
		t.Fatalf("expected ErrRecipeImageNotFound, got %v", err)
	}
}
