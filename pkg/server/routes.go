package server

import (
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "grabctl/docs"
	"grabctl/webui"
)

func SetupRouter(handler *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Add CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   handler.cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   handler.cfg.Server.AllowedHeaders,
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if handler.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// Define routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/version", handler.VersionHandler()) // Get server version

		// Download job endpoints
		r.Route("/downloads", func(r chi.Router) {
			r.Post("/", handler.StartDownload())       // Launch a background download
			r.Get("/progress", handler.GetProgress())  // Full registry snapshot for polling
			r.Get("/jobs/{id}", handler.GetJob())      // Single job snapshot
		})

		// Media metadata probe
		r.Route("/media", func(r chi.Router) {
			r.Post("/info", handler.MediaInfo())
		})

		// Downloaded file endpoints
		r.Route("/files", func(r chi.Router) {
			r.Get("/", handler.ListFiles())
			r.Get("/{name}", handler.FetchFile())
		})
	})

	// Serve the embedded web UI for all other routes
	if err := webui.SetupWebUI(r); err != nil {
		log.Printf("Failed to set up web UI: %v", err)
	}

	return r
}
