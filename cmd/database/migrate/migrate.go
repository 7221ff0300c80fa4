package migration

import (
	"fmt"
	"log"

	"DishCraft-Backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.GenerationEndpoint{}); err != nil {
		log.Fatalf("Error migrating generation endpoint database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
