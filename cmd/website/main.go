package main

import (
	"flag"
	"log"

	"github.com/faresmergui/docker-student-stack/config"
	"github.com/faresmergui/docker-student-stack/website"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the yaml config file")
	templates := flag.String("templates", "website/templates/*", "glob for the HTML templates")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client := website.NewStudentClient(cfg.Website.APIURL, cfg.Website.Username, cfg.Website.Password)
	pageHandler := website.NewPageHandler(client)
	router := website.Router(pageHandler, *templates)

	addr := ":" + cfg.Website.Port
	log.Printf("Starting student list website on port %s (API: %s)", addr, cfg.Website.APIURL)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
