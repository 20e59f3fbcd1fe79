package config

import (
	"os"
	"time"

	"recipebox/internal/api/handlers"
	"recipebox/internal/api/routes"
	"recipebox/internal/middleware"
	"recipebox/internal/utils"
	"recipebox/internal/utils/storage"
	"recipebox/pkg/composition"
	"recipebox/pkg/ingredient"
	"recipebox/pkg/jwt"
	"recipebox/pkg/moderation"
	"recipebox/pkg/pantry"
	"recipebox/pkg/recipe"
	"recipebox/pkg/review"
	"recipebox/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	compositionRepository := composition.NewCompositionRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	pantryRepository := pantry.NewPantryRepository(db)
	reviewRepository := review.NewReviewRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	recipeService := recipe.NewRecipeService(recipeRepository, compositionRepository, s3)
	compositionService := composition.NewCompositionService(compositionRepository, recipeRepository)
	ingredientService := ingredient.NewIngredientService(ingredientRepository, compositionRepository)
	pantryService := pantry.NewPantryService(pantryRepository)
	moderationService := moderation.NewModerationService(recipeRepository, compositionRepository, userRepository)
	reviewService := review.NewReviewService(reviewRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	moderationHandler := handlers.NewModerationHandler(moderationService, validator)
	compositionHandler := handlers.NewCompositionHandler(compositionService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	pantryHandler := handlers.NewPantryHandler(pantryService, validator)
	reviewHandler := handlers.NewReviewHandler(reviewService, validator)

	// routes
	routesConfig := routes.Config{
		App:                app,
		UserHandler:        userHandler,
		RecipeHandler:      recipeHandler,
		ModerationHandler:  moderationHandler,
		CompositionHandler: compositionHandler,
		IngredientHandler:  ingredientHandler,
		PantryHandler:      pantryHandler,
		ReviewHandler:      reviewHandler,
		Middleware:         middlewares,
		JWTService:         jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
