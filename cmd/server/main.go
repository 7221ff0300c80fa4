package main

import (
	"log"

	"DishCraft-Backend/cmd/config"
	migration "DishCraft-Backend/cmd/database/migrate"
	"DishCraft-Backend/internal/utils"
)

func main() {
	utils.LoadConfig()

	if utils.GetConfig("GROQ_API_KEY") == "" {
		log.Fatal("GROQ_API_KEY is not set")
	}

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("error connecting to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("error migrating database: %v", err)
	}

	appLogger := utils.NewLogger()
	defer func() { _ = appLogger.Sync() }()

	app, err := config.NewApp(db, appLogger)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	port := utils.GetConfig("PORT")
	if port == "" {
		port = "5000"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
