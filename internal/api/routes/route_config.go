package routes

import (
	"DishCraft-Backend/internal/api/handlers"
	"DishCraft-Backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                  *fiber.App
	UserHandler          handlers.UserHandler
	RecipeHandler        handlers.RecipeHandler
	ImageEndpointHandler handlers.ImageEndpointHandler
	Middleware           middleware.Middleware
	ImageDir             string
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Static("/images", c.ImageDir)
	c.Auth()
	c.Recipes()
	c.GuestRoute()
}

func (c *Config) Auth() {
	api := c.App.Group("/api")
	{
		api.Post("/signup", c.UserHandler.Signup)
		api.Post("/login", c.UserHandler.Login)
	}
}

func (c *Config) Recipes() {
	api := c.App.Group("/api")

	// Generation and history require the identity header; single-recipe
	// reads are public so generated recipes stay linkable.
	api.Post("/generate-recipe", c.Middleware.IdentityMiddleware(), c.RecipeHandler.GenerateRecipe)
	api.Post("/generate-from-name", c.Middleware.IdentityMiddleware(), c.RecipeHandler.GenerateFromName)
	api.Get("/recipes/history", c.Middleware.IdentityMiddleware(), c.RecipeHandler.GetRecipeHistory)
	api.Get("/recipes/:id", c.RecipeHandler.GetRecipeByID)
	api.Post("/recipes/:id/share", c.Middleware.IdentityMiddleware(), c.RecipeHandler.ShareRecipe)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/api/generation-endpoint", c.ImageEndpointHandler.AnnounceEndpoint)
}
