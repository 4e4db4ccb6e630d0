package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/contatonovatek-coder/Novatek-Aulas/backend/auth"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/config"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/middleware"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/payments"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/routes"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/store"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Open the document store
	backend, err := newBackend(cfg)
	if err != nil {
		log.Fatalf("Error opening storage backend: %v", err)
	}
	st, err := store.Open(backend, cfg.DataKey)
	if err != nil {
		log.Fatalf("Error opening store: %v", err)
	}
	if st.Reseeded {
		if st.ReseedCause != nil {
			logger.Printf("stored document was unreadable (%v); reseeded, backup kept under %s.corrupt", st.ReseedCause, cfg.DataKey)
		} else {
			logger.Printf("no stored document found; seeded initial data under %s", cfg.DataKey)
		}
	}

	// Resume a persisted session, if any
	session := auth.NewSession(st, cfg)
	if err := session.Resume(); err != nil {
		logger.Printf("could not resume session: %v", err)
	}

	// Payment flow
	gateway := payments.NewMercadoPago(cfg)
	processor := payments.NewProcessor(st, gateway, logger)

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, st, session, processor, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}

func newBackend(cfg *config.Config) (store.Backend, error) {
	if cfg.StorageDriver == "redis" {
		return store.NewRedisBackend(cfg.RedisAddr, cfg.RedisPassword)
	}
	return store.NewFileBackend(cfg.StoragePath)
}
