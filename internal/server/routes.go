package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"faqsite/internal/config"
	"faqsite/internal/handlers"
	"faqsite/internal/handlers/api"
	"faqsite/internal/middleware"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(yc *config.YAMLConfig) {
	styles := handlers.NewStyles(yc)

	// Initialize handlers
	faqHandler := handlers.NewFAQHandler(s.Store, s.Cfg, styles, s.Log)
	apiHandler := api.NewFAQHandler(s.Store)
	healthHandler := api.NewHealthHandler(s.Store)

	// Operational routes
	s.App.Get("/healthz", healthHandler.Check)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// JSON API (stateless)
	apiGroup := s.App.Group("/api")
	apiGroup.Get("/faqs", apiHandler.List)
	apiGroup.Get("/faqs/counts", apiHandler.Counts)
	apiGroup.Get("/faqs/recent", apiHandler.Recent)
	apiGroup.Get("/faqs/:id", apiHandler.Get)
	apiGroup.Get("/faqs/:id/answer", apiHandler.Answer)
	apiGroup.Get("/buckets/:bucket/top", apiHandler.Top)

	// Page routes carry the visitor's interaction state
	s.App.Get("/", middleware.LoadState, faqHandler.Index)
	s.App.Get("/suggest", faqHandler.Suggest)
	s.App.Get("/tag", middleware.LoadState, faqHandler.Tag)
	s.App.Post("/clear", middleware.LoadState, faqHandler.Clear)
	s.App.Post("/faq/:id/toggle", middleware.LoadState, faqHandler.Toggle)
	s.App.Post("/faq/:id/copy", middleware.LoadState, faqHandler.Copy)
	s.App.Get("/faq/:id/copied", middleware.LoadState, faqHandler.Copied)
}
