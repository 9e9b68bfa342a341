package api

import (
	"net/url"

	"github.com/gofiber/fiber/v3"

	"faqsite/internal/faq"
	"faqsite/internal/models"
	"faqsite/internal/validation"
)

// Result limits.
const (
	defaultRecent = 5
	defaultTop    = 3
	maxLimit      = 100
)

// FAQHandler serves the FAQ index as JSON.
type FAQHandler struct {
	store *faq.Store
}

// NewFAQHandler creates a new API FAQ handler.
func NewFAQHandler(store *faq.Store) *FAQHandler {
	return &FAQHandler{store: store}
}

// List returns the records matching the category and q parameters.
func (h *FAQHandler) List(c fiber.Ctx) error {
	cat, ok := validation.ValidateCategory(c.Query("category"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "unknown category")
	}
	keyword := validation.NormalizeKeyword(c.Query("q"))

	idx := h.store.Index()
	res := idx.Search(faq.Query{Category: cat, Keyword: keyword})

	groups := make([]models.BucketGroup, 0, len(faq.Buckets))
	for _, b := range faq.Buckets {
		ids := make([]int, 0, len(res.Groups[b]))
		for _, r := range res.Groups[b] {
			ids = append(ids, r.ID)
		}
		groups = append(groups, models.BucketGroup{Category: string(b), IDs: ids})
	}

	return jsonSuccess(c, models.SearchResponse{
		Category: string(res.Query.Category),
		Keyword:  keyword,
		Matched:  res.Matched,
		Total:    res.Total,
		Items:    res.Items,
		Groups:   groups,
	})
}

// Counts returns the number of records per bucket in display order.
func (h *FAQHandler) Counts(c fiber.Ctx) error {
	idx := h.store.Index()
	return jsonSuccess(c, models.NewCountsResponse(idx.Counts(), idx.Len()))
}

// Recent returns the records with the highest ids.
func (h *FAQHandler) Recent(c fiber.Ctx) error {
	n := validation.ParseLimit(c.Query("n"), defaultRecent, maxLimit)
	return jsonSuccess(c, h.store.Index().MostRecent(n))
}

// Top returns the first records of one bucket.
func (h *FAQHandler) Top(c fiber.Ctx) error {
	raw, err := url.PathUnescape(c.Params("bucket"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "unknown category")
	}
	b, ok := validation.ValidateCategory(raw)
	if !ok || b == faq.All {
		return jsonError(c, fiber.StatusBadRequest, "unknown category")
	}
	n := validation.ParseLimit(c.Query("n"), defaultTop, maxLimit)
	return jsonSuccess(c, h.store.Index().TopByBucket(b, n))
}

// Get returns a single record.
func (h *FAQHandler) Get(c fiber.Ctx) error {
	r, ok, err := h.record(c)
	if !ok {
		return err
	}
	return jsonSuccess(c, r)
}

// Answer returns the raw answer text, the clipboard payload.
func (h *FAQHandler) Answer(c fiber.Ctx) error {
	r, ok, err := h.record(c)
	if !ok {
		return err
	}
	return plainText(c, r.Answer)
}

// record resolves :id. When ok is false the error response has already been
// written and err is the result of writing it.
func (h *FAQHandler) record(c fiber.Ctx) (r faq.Record, ok bool, err error) {
	id, valid := validation.ParseID(c.Params("id"))
	if !valid {
		return faq.Record{}, false, jsonError(c, fiber.StatusBadRequest, "invalid FAQ id")
	}
	r, found := h.store.Index().Get(id)
	if !found {
		return faq.Record{}, false, jsonError(c, fiber.StatusNotFound, "FAQ not found")
	}
	return r, true, nil
}
