package handlers

import (
	"github.com/gofiber/fiber/v3"
)

// isHTMX reports whether the request was issued by HTMX and expects a partial.
func isHTMX(c fiber.Ctx) bool {
	return c.Get("HX-Request") == "true"
}

// backToPage answers a state-changing request: HTMX clients get the page body
// re-rendered by render, plain form posts are redirected to the page.
func backToPage(c fiber.Ctx, render func() error) error {
	if isHTMX(c) {
		return render()
	}
	return c.Redirect().To("/")
}
