package main

import (
	"log"

	_ "github.com/joho/godotenv/autoload"

	"github.com/ranjanoa/portfolio/internal/config"
	"github.com/ranjanoa/portfolio/internal/contact"
	"github.com/ranjanoa/portfolio/internal/content"
	"github.com/ranjanoa/portfolio/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	page, err := content.Load(cfg.ContentPath)
	if err != nil {
		log.Fatalf("Failed to load page content: %v", err)
	}

	r, err := web.NewRouter(page, contact.NewSubmitter(cfg.SMTP))
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	log.Printf("Portfolio listening on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
