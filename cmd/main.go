package main

import (
	"log"

	"github.com/amitb25/habit-backend-sub001/internal/app"
)

// @title HustleKit Habit Backend API
// @version 1.0
// @description Habit tracking backend with streaks, XP and leveling
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Create and initialize the application
	application, err := app.New()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	// Run the application
	if err := application.Run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}
