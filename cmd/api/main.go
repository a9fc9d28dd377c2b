package main

import (
	"log"

	"github.com/thaumiel-labs/seraph-relay/internal/config"
	"github.com/thaumiel-labs/seraph-relay/pkg/relay"

	fiberlog "github.com/gofiber/fiber/v2/log"
)

func main() {
	// Load environment files explicitly
	envFiles := []string{".env.local", ".env.development", ".env"}
	config.LoadEnvFiles(envFiles)

	// Load configuration from YAML
	cfg, err := config.LoadFromFile("config.yaml")
	if err != nil {
		fiberlog.Fatalf("Failed to load config: %v", err)
	}

	server := relay.New(cfg)

	log.Println("Starting SERAPH relay server...")
	if err := server.Run(); err != nil {
		fiberlog.Fatalf("Server failed: %v", err)
	}
}
