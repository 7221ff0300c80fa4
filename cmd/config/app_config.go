package config

import (
	"os"
	"time"

	"DishCraft-Backend/internal/api/handlers"
	"DishCraft-Backend/internal/api/routes"
	"DishCraft-Backend/internal/middleware"
	"DishCraft-Backend/internal/utils"
	"DishCraft-Backend/internal/utils/mailing"
	"DishCraft-Backend/internal/utils/storage"
	"DishCraft-Backend/pkg/generation"
	"DishCraft-Backend/pkg/image"
	"DishCraft-Backend/pkg/recipe"
	"DishCraft-Backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB, appLogger *zap.Logger) (*fiber.App, error) {
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
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// image storage
	imageDir := utils.GetConfig("IMAGE_DIR")
	if imageDir == "" {
		imageDir = "./images"
	}
	imageStore, err := newImageStore(imageDir)
	if err != nil {
		return nil, err
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	endpointRepository := image.NewEndpointRepository(db)

	// Service
	userService := user.NewUserService(userRepository)
	generationClient := generation.NewGroqClient(
		utils.GetConfig("GROQ_API_KEY"),
		utils.GetConfig("GROQ_MODEL"),
		utils.GetConfig("GROQ_BASE_URL"),
		appLogger,
	)
	endpointCache := image.NewEndpointCache(endpointRepository, utils.GetConfig("AI_MODEL_URL"), appLogger)
	imageResolver := newImageResolver(imageStore, endpointCache, recipeRepository, appLogger)
	recipeService := recipe.NewRecipeService(recipeRepository, generationClient, imageResolver, mailing.SendMail, appLogger)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	imageEndpointHandler := handlers.NewImageEndpointHandler(endpointRepository, endpointCache, validator)

	// routes
	routesConfig := routes.Config{
		App:                  app,
		UserHandler:          userHandler,
		RecipeHandler:        recipeHandler,
		ImageEndpointHandler: imageEndpointHandler,
		Middleware:           middlewares,
		ImageDir:             imageDir,
	}
	routesConfig.Setup()
	return app, nil
}

func newImageStore(imageDir string) (storage.ImageStore, error) {
	if utils.GetConfig("IMAGE_STORAGE") == "s3" {
		return storage.NewAwsS3()
	}
	return storage.NewLocalStore(imageDir)
}

func newImageResolver(
	imageStore storage.ImageStore,
	endpointCache *image.EndpointCache,
	recipeRepository recipe.RecipeRepository,
	appLogger *zap.Logger,
) image.ImageResolver {
	if utils.GetConfig("IMAGE_RESOLVER") == "delegate" {
		return image.NewDelegateResolver(endpointCache, imageStore, recipeRepository, appLogger)
	}
	return image.NewScrapeResolver(imageStore, appLogger)
}
