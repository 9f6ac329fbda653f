package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/openroam/traveldiary/internal/diary/app"
)

func main() {
	// Best effort; the environment wins over .env values.
	_ = godotenv.Load()

	cfg := app.LoadConfig()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
