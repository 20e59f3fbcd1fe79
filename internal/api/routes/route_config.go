package routes

import (
	"recipebox/internal/api/handlers"
	"recipebox/internal/middleware"
	"recipebox/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	UserHandler        handlers.UserHandler
	RecipeHandler      handlers.RecipeHandler
	ModerationHandler  handlers.ModerationHandler
	CompositionHandler handlers.CompositionHandler
	IngredientHandler  handlers.IngredientHandler
	PantryHandler      handlers.PantryHandler
	ReviewHandler      handlers.ReviewHandler
	Middleware         middleware.Middleware
	JWTService         jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Recipes()
	c.Ingredients()
	c.Pantry()
	c.Reviews()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")

	// Read endpoints are public; the optional token only widens visibility.
	recipes.Get("", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.RecipeHandler.GetRecipes)
	recipes.Get("/search", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.RecipeHandler.SearchRecipes)

	// Moderation queue before /:id so "pending" is not read as a recipe id.
	recipes.Get("/pending", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminMiddleware(), c.ModerationHandler.GetPendingRecipes)

	recipes.Get("/:id", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.RecipeHandler.GetRecipeDetail)
	recipes.Get("/:id/steps", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.RecipeHandler.GetRecipeSteps)
	recipes.Get("/:id/image", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.RecipeHandler.GetRecipeImage)
	recipes.Get("/:id/ingredients", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.CompositionHandler.ListRecipeIngredients)

	// Submissions from any authenticated user land in the review queue. The
	// composition routes are also open to authenticated users so a submitter
	// can populate their own pending recipe; the service refuses everything
	// beyond that.
	recipes.Post("/submissions", c.Middleware.AuthMiddleware(c.JWTService), c.ModerationHandler.SubmitRecipe)
	recipes.Post("/:id/ingredients", c.Middleware.AuthMiddleware(c.JWTService), c.CompositionHandler.AddRecipeIngredient)
	recipes.Put("/:id/ingredients/:ingredientId", c.Middleware.AuthMiddleware(c.JWTService), c.CompositionHandler.UpdateRecipeIngredient)
	recipes.Delete("/:id/ingredients/:ingredientId", c.Middleware.AuthMiddleware(c.JWTService), c.CompositionHandler.RemoveRecipeIngredient)

	admin := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminMiddleware())
	{
		admin.Post("", c.RecipeHandler.CreateRecipe)
		admin.Put("/:id", c.RecipeHandler.UpdateRecipe)
		admin.Delete("/:id", c.RecipeHandler.DeleteRecipe)
		admin.Put("/:id/approve", c.ModerationHandler.ApproveRecipe)
		admin.Put("/:id/reject", c.ModerationHandler.RejectRecipe)
		admin.Post("/:id/upload-image", c.RecipeHandler.UploadRecipeImage)
	}
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/v1/ingredients")
	ingredients.Get("", c.IngredientHandler.GetIngredients)
	ingredients.Get("/search", c.IngredientHandler.SearchIngredients)
	ingredients.Get("/:id", c.IngredientHandler.GetIngredient)

	admin := c.App.Group("/api/v1/ingredients", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminMiddleware())
	{
		admin.Post("", c.IngredientHandler.CreateIngredient)
		admin.Put("/:id", c.IngredientHandler.UpdateIngredient)
		admin.Delete("/:id", c.IngredientHandler.DeleteIngredient)
	}
}

func (c *Config) Pantry() {
	pantry := c.App.Group("/api/v1/pantry", c.Middleware.AuthMiddleware(c.JWTService))
	{
		pantry.Post("", c.PantryHandler.AddPantryItem)
		pantry.Get("", c.PantryHandler.GetPantry)
		pantry.Delete("/:ingredientId", c.PantryHandler.RemovePantryItem)
	}
}

func (c *Config) Reviews() {
	reviews := c.App.Group("/api/v1/reviews")
	{
		reviews.Post("", c.ReviewHandler.SubmitReview)
		reviews.Get("/:recipeId", c.ReviewHandler.GetReviewsForRecipe)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
