package ingredient

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

func newIngredientTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:ingredient-test-%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&entities.Ingredient{},
		&entities.RecipeIngredient{},
		&entities.PantryItem{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func newIngredientTestService(t *testing.T) (IngredientService, *gorm.DB) {
	t.Helper()
	db := newIngredientTestDB(t)
	return NewIngredientService(NewIngredientRepository(db), composition.NewCompositionRepository(db)), db
}

func TestDeleteIngredientReferencedByRecipe(t *testing.T) {
	ctx := context.Background()
	svc, db := newIngredientTestService(t)

	flour, err := svc.CreateIngredient(ctx, domain.CreateIngredientRequest{Name: "Flour"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	flourID := uuid.MustParse(flour.ID)

	if err := db.Create(&entities.RecipeIngredient{
		RecipeID:     uuid.New(),
		IngredientID: flourID,
		Quantity:     500,
		Unit:         "g",
	}).Error; err != nil {
		t.Fatalf("seed composition: %v", err)
	}

	if err := svc.DeleteIngredient(ctx, flour.ID); !errors.Is(err, domain.ErrIngredientInUse) {
		t.Fatalf("expected ErrIngredientInUse, got %v", err)
	}

	// The refused delete leaves the row intact.
	if _, err := svc.GetIngredient(ctx, flour.ID); err != nil {
		t.Fatalf("ingredient must survive refused delete: %v", err)
	}
}

func TestDeleteIngredientReferencedByPantry(t *testing.T) {
	ctx := context.Background()
	svc, db := newIngredientTestService(t)

	salt, err := svc.CreateIngredient(ctx, domain.CreateIngredientRequest{Name: "Salt"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := db.Create(&entities.PantryItem{
		UserID:       uuid.New(),
		IngredientID: uuid.MustParse(salt.ID),
		Quantity:     1,
		Unit:         "box",
	}).Error; err != nil {
		t.Fatalf("seed pantry: %v", err)
	}

	if err := svc.DeleteIngredient(ctx, salt.ID); !errors.Is(err, domain.ErrIngredientInPantry) {
		t.Fatalf("expected ErrIngredientInPantry, got %v", err)
	}
	if _, err := svc.GetIngredient(ctx, salt.ID); err != nil {
		t.Fatalf("ingredient must survive refused delete: %v", err)
	}
}

func TestDeleteUnreferencedIngredient(t *testing.T) {
	ctx := context.Background()
	svc, _ := newIngredientTestService(t)

	pepper, err := svc.CreateIngredient(ctx, domain.CreateIngredientRequest{Name: "Pepper"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.DeleteIngredient(ctx, pepper.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetIngredient(ctx, pepper.ID); !errors.Is(err, domain.ErrIngredientNotFound) {
		t.Fatalf("expected ErrIngredientNotFound after delete, got %v", err)
	}
}

func TestDeleteMissingIngredient(t *testing.T) {
	ctx := context.Background()
	svc, _ := newIngredientTestService(t)

	if err := svc.DeleteIngredient(ctx, uuid.NewString()); !errors.Is(err, domain.ErrIngredientNotFound) {
		t.Fatalf("expected ErrIngredientNotFound, got %v", err)
	}
}

func TestSearchIngredientsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	svc, _ := newIngredientTestService(t)

	for _, name := range []string{"Garlic", "Garam Masala", "Onion"} {
		if _, err := svc.CreateIngredient(ctx, domain.CreateIngredientRequest{Name: name}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	found, err := svc.SearchIngredients(ctx, "GAR")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("expected 2 matches, got %d: %+v", len(found), found)
	}
}

func TestGetIngredientsOrderedByName(t *testing.T) {
	ctx := context.Background()
	svc, _ := newIngredientTestService(t)

	for _, name := range []string{"Zucchini", "Apple", "Milk"} {
		if _, err := svc.CreateIngredient(ctx, domain.CreateIngredientRequest{Name: name}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	all, err := svc.GetIngredients(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 ingredients, got %d", len(all))
	}
	if all[0].Name != "Apple" || all[1].Name != "Milk" || all[2].Name != "Zucchini" {
		t.Fatalf("expected name ordering, got %+v", all)
	}
}

func TestUpdateIngredientMissing(t *testing.T) {
	ctx := context.Background()
	svc, _ := newIngredientTestService(t)

	err := svc.UpdateIngredient(ctx, uuid.NewString(), domain.UpdateIngredientRequest{Name: "Ghost"})
	if !errors.Is(err, domain.ErrIngredientNotFound) {
		t.Fatalf("expected ErrIngredientNotFound, got %v", err)
	}
}
