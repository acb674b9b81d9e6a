package main

import (
	"flag"
	"log"

	"github.com/faresmergui/docker-student-stack/config"
	"github.com/faresmergui/docker-student-stack/db"
	"github.com/faresmergui/docker-student-stack/handlers"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the yaml config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Create the roster store; the data file is read lazily on first request,
	// so a missing file surfaces as HTTP 500 rather than a startup failure.
	store := db.NewFileStore(cfg.API.DataFile)

	// Create API handler (injecting the store)
	apiHandler := handlers.NewAPIHandler(store)
	router := handlers.Router(apiHandler, cfg.API.Username, cfg.API.Password)

	addr := ":" + cfg.API.Port
	log.Printf("Starting student ages API on port %s (data file: %s)", addr, cfg.API.DataFile)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
