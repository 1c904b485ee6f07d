package main

import (
	"log"

	"github.com/Halalsolutions/ced-udus-erp/app/config"
	"github.com/Halalsolutions/ced-udus-erp/app/database"
)

func main() {
	cfg := config.Load()
	defer cfg.DB.Close()

	if err := database.RunMigrations(cfg.DB); err != nil {
		log.Fatal("Migration failed:", err)
	}
	log.Println("Migrations applied successfully")
}
