package main

import (
	"os"
	"time"

	"invoice-generator/internal/export"
	"invoice-generator/internal/handlers"
	"invoice-generator/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Pretty console logs; the API itself has gin's request log.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	// Point the export pipeline at the conversion service.
	if url := os.Getenv("EXPORTER_URL"); url != "" {
		handlers.Snapshotter = export.NewClient(url)
	}

	r := gin.Default()

	// --- CORS (The Bridge Configuration) ---
	// The React form talks to us from the Vite dev server.
	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "http://localhost:5173"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })

	// Session bootstrap is the only unauthenticated API call: the
	// browser trades nothing for a token tied to a fresh invoice.
	r.POST("/session", handlers.StartSession)

	// --- PROTECTED ROUTES ---
	// Everything below needs the session token, so every request lands
	// on its own invoice store and nobody can touch anyone else's.
	api := r.Group("/api")
	api.Use(middleware.SessionMiddleware(handlers.Sessions))
	{
		api.GET("/invoice", handlers.GetInvoice)
		api.PUT("/invoice/field", handlers.UpdateField)

		api.POST("/invoice/items", handlers.AddLineItem)
		api.PUT("/invoice/items/:id", handlers.UpdateLineItem)
		api.DELETE("/invoice/items/:id", handlers.RemoveLineItem)

		api.POST("/invoice/submit", handlers.SubmitInvoice)

		api.GET("/invoice/qr", handlers.GetInvoiceQR)
		api.POST("/invoice/export", handlers.ExportInvoice)
	}

	// --- DEPLOYMENT: Serve React Frontend ---
	// Serve the static files (JS, CSS, Images)
	r.Static("/assets", "./web/assets")
	r.StaticFile("/vite.svg", "./web/vite.svg")

	// SPA Catch-All: if the user refreshes mid-edit, serve index.html
	// so React can handle the routing.
	r.NoRoute(func(c *gin.Context) {
		c.File("./web/index.html")
	})
	// ----------------------------------------

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info().Str("port", port).Msg("🚀 Invoice generator starting")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}
}
