package main

import (
	"log"

	"github.com/saubb/artisan/config"
	"github.com/saubb/artisan/internal/app"
)

func main() {
	conf := config.CreateNewConfig()

	server := app.App{
		Config: conf,
	}

	if err := server.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
