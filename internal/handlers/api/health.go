package api

import (
	"github.com/gofiber/fiber/v3"

	"faqsite/internal/faq"
	"faqsite/internal/models"
)

// HealthHandler reports liveness.
type HealthHandler struct {
	store *faq.Store
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(store *faq.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// Check reports that the service is up and how many records are served.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	return jsonSuccess(c, models.HealthResponse{
		Status:  "ok",
		Records: h.store.Index().Len(),
	})
}
