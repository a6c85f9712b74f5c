package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"previewfm/blueprint"
	"previewfm/controllers/catalog"
	"previewfm/logger"
	"previewfm/middleware"
	"previewfm/services/spotify"
)

func init() {
	env := os.Getenv("ENV")
	if env == "" {
		log.Println("==⚠️ WARNING: env variable not set. Using dev ⚠️==")
		env = "dev"
	}
	err := godotenv.Load(".env." + env)
	if err != nil {
		log.Println("Error reading the env file")
		log.Println(err)
	}
}

func main() {
	zapLogger := logger.NewZapSentryLogger(nil)
	defer func() {
		_ = zapLogger.Sync()
	}()

	credentials := &blueprint.IntegrationCredentials{
		AppID:     os.Getenv("SPOTIFY_CLIENT_ID"),
		AppSecret: os.Getenv("SPOTIFY_CLIENT_SECRET"),
	}
	if credentials.AppID == "" || credentials.AppSecret == "" {
		log.Println("SPOTIFY_CLIENT_ID or SPOTIFY_CLIENT_SECRET is not set. Upstream calls will fail.")
	}

	catalogService := spotify.NewService(credentials, zapLogger)
	catalogController := catalog.NewController(catalogService, zapLogger)
	requestLogger := middleware.NewRequestLogger(zapLogger)

	app := fiber.New()
	app.Use(cors.New(), requestLogger.LogIncomingRequest)

	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.SendString("previewfm API running. Try /api/featured or /api/search?q=Billie%20Eilish")
	})

	apiRouter := app.Group("/api")
	apiRouter.Get("/featured", catalogController.GetFeatured)
	apiRouter.Get("/playlist/:id", catalogController.GetPlaylist)
	apiRouter.Get("/search", catalogController.Search)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5050"
	}

	log.Printf("Server is up and running on port: %s", port)
	if err := app.Listen(fmt.Sprintf(":%s", port)); err != nil {
		log.Printf("Error starting server: %v\n", err)
		os.Exit(1)
	}
}
