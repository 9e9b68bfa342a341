package handlers

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"

	"faqsite/internal/config"
	"faqsite/internal/faq"
	"faqsite/internal/metrics"
	"faqsite/internal/middleware"
	"faqsite/internal/validation"
)

// suggestLimit bounds the autocomplete list.
const suggestLimit = 5

// FAQHandler serves the FAQ page and its interactions.
type FAQHandler struct {
	store  *faq.Store
	cfg    *config.Config
	styles *Styles
	log    zerolog.Logger
	now    func() time.Time
}

// NewFAQHandler creates a new FAQ page handler.
func NewFAQHandler(store *faq.Store, cfg *config.Config, styles *Styles, log zerolog.Logger) *FAQHandler {
	return &FAQHandler{
		store:  store,
		cfg:    cfg,
		styles: styles,
		log:    log,
		now:    time.Now,
	}
}

// Index renders the landing view or the filtered results. The category and
// q query parameters, when present, update the visitor's state.
func (h *FAQHandler) Index(c fiber.Ctx) error {
	st := middleware.StateFrom(c)
	args := c.Request().URI().QueryArgs()

	if args.Has("category") {
		cat, ok := validation.ValidateCategory(c.Query("category"))
		if !ok {
			cat = faq.All
		}
		st.SetCategory(cat)
	}
	if args.Has("q") {
		st.SetKeyword(validation.NormalizeKeyword(c.Query("q")))
	}

	data := h.pageData(st)
	if isHTMX(c) {
		return c.Render("partials/body", data, "")
	}
	return c.Render("index", MergeBranding(data, h.cfg))
}

// pageData builds the template data for the page body.
func (h *FAQHandler) pageData(st *faq.State) fiber.Map {
	idx := h.store.Index()
	q := st.Query()

	data := fiber.Map{
		"Keyword": st.Keyword,
		"Total":   idx.Len(),
		"Matched": idx.Len(),
	}

	if faq.IsLanding(q) {
		data["Landing"] = buildLanding(idx.Landing(h.cfg.PreviewLimit, h.cfg.RecentLimit), h.styles)
		return data
	}

	res := idx.Search(q)
	metrics.RecordSearch(res.Matched)
	data["Matched"] = res.Matched
	data["Results"] = h.cards(st).results(res, idx.Counts())
	return data
}

func (h *FAQHandler) cards(st *faq.State) cardBuilder {
	return cardBuilder{state: st, styles: h.styles, now: h.now(), ttl: h.cfg.CopiedTTL}
}

// Suggest returns autocomplete suggestions for HTMX.
func (h *FAQHandler) Suggest(c fiber.Ctx) error {
	keyword := validation.NormalizeKeyword(c.Query("q"))
	if keyword == "" {
		return c.SendString("")
	}

	matches := h.store.Index().Search(faq.Query{Category: faq.All, Keyword: keyword}).Items
	if len(matches) > suggestLimit {
		matches = matches[:suggestLimit]
	}
	items := make([]LinkItem, 0, len(matches))
	for _, r := range matches {
		items = append(items, linkItem(r))
	}

	return c.Render("partials/suggestions", fiber.Map{
		"Items": items,
	}, "")
}

// record resolves the :id route parameter to a record.
func (h *FAQHandler) record(c fiber.Ctx) (faq.Record, error) {
	id, ok := validation.ParseID(c.Params("id"))
	if !ok {
		return faq.Record{}, fiber.NewError(fiber.StatusBadRequest, "invalid FAQ id")
	}
	r, ok := h.store.Index().Get(id)
	if !ok {
		return faq.Record{}, fiber.NewError(fiber.StatusNotFound, "FAQ not found")
	}
	return r, nil
}

// Toggle expands the card, or collapses it when it is already open.
func (h *FAQHandler) Toggle(c fiber.Ctx) error {
	r, err := h.record(c)
	if err != nil {
		return err
	}

	st := middleware.StateFrom(c)
	st.Toggle(r.ID)

	return backToPage(c, func() error {
		return c.Render("partials/card", h.cards(st).card(r), "")
	})
}

// Copy marks the answer as copied and returns its raw text. The browser puts
// the text on the clipboard.
func (h *FAQHandler) Copy(c fiber.Ctx) error {
	r, err := h.record(c)
	if err != nil {
		return err
	}

	middleware.StateFrom(c).MarkCopied(r.ID, h.now())
	metrics.RecordCopy()
	h.log.Debug().Int("id", r.ID).Msg("answer copied")

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(r.Answer)
}

// Copied renders the copied acknowledgement while it is visible. The partial
// polls itself once more after the remaining lifetime to clear the toast.
func (h *FAQHandler) Copied(c fiber.Ctx) error {
	r, err := h.record(c)
	if err != nil {
		return err
	}

	st := middleware.StateFrom(c)
	now := h.now()
	visible := st.CopiedVisible(r.ID, now, h.cfg.CopiedTTL)

	remaining := h.cfg.CopiedTTL - now.Sub(st.CopiedAt)
	if remaining < 0 {
		remaining = 0
	}

	return c.Render("partials/copied", fiber.Map{
		"ID":      r.ID,
		"Visible": visible,
		"DelayMS": remaining.Milliseconds(),
	}, "")
}

// Clear resets every filter and closes the open card.
func (h *FAQHandler) Clear(c fiber.Ctx) error {
	st := middleware.StateFrom(c)
	st.ClearAll()

	return backToPage(c, func() error {
		return c.Render("partials/body", h.pageData(st), "")
	})
}

// Tag appends the tag in the name query parameter to the keyword.
func (h *FAQHandler) Tag(c fiber.Ctx) error {
	st := middleware.StateFrom(c)
	st.AppendTag(c.Query("name"))
	st.SetKeyword(validation.NormalizeKeyword(st.Keyword))

	return backToPage(c, func() error {
		return c.Render("partials/body", h.pageData(st), "")
	})
}
