package main

import (
	"log"

	"freight_tracker/internal/config"
	"freight_tracker/internal/seed"
)

func main() {
	db := config.InitDB()
	if err := seed.Run(db); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	log.Println("database seeded")
}
