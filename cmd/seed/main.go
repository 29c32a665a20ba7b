package main

import (
	"log"

	"gorm.io/gorm"

	"github.com/globaledge/consult-api/config"
	"github.com/globaledge/consult-api/database"
)

// Standalone seeder: creates the admin account and starter reference
// data without booting the API server.
func main() {
	if err := config.LoadENV(); err != nil {
		log.Println("No .env file loaded:", err)
	}

	store, err := database.StartGORM()
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer store.Close()

	if err := store.Init(); err != nil {
		log.Fatal("Failed to migrate tables: ", err)
	}

	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	if err := database.SeedDefaults(db); err != nil {
		log.Fatal("Seeding failed: ", err)
	}

	log.Println("Seeding completed")
}
