package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"faqsite/internal/faq"
)

// Session keys. Values are stored as strings so they survive any storage
// encoding unchanged.
const (
	keyCategory = "faq_category"
	keyKeyword  = "faq_keyword"
	keyOpen     = "faq_open"
	keyCopied   = "faq_copied"
	keyCopiedAt = "faq_copied_at"

	localsState = "faq_state"
)

// LoadState restores the visitor's interaction state from the session and
// writes it back once the handler chain returns. Without a session the state
// lives for the request only.
func LoadState(c fiber.Ctx) error {
	st := &faq.State{Category: faq.All}

	sess := session.FromContext(c)
	if sess == nil {
		c.Locals(localsState, st)
		return c.Next()
	}

	readState(sess, st)
	c.Locals(localsState, st)

	err := c.Next()
	writeState(sess, st)
	return err
}

// StateFrom returns the interaction state loaded by LoadState.
func StateFrom(c fiber.Ctx) *faq.State {
	if st, ok := c.Locals(localsState).(*faq.State); ok {
		return st
	}
	st := &faq.State{Category: faq.All}
	c.Locals(localsState, st)
	return st
}

func readState(sess *session.Middleware, st *faq.State) {
	if cat, ok := faq.ParseCategory(getString(sess, keyCategory)); ok {
		st.Category = cat
	}
	st.Keyword = getString(sess, keyKeyword)
	st.OpenID = getInt(sess, keyOpen)
	st.CopiedID = getInt(sess, keyCopied)
	if at, err := time.Parse(time.RFC3339Nano, getString(sess, keyCopiedAt)); err == nil {
		st.CopiedAt = at
	}
}

func writeState(sess *session.Middleware, st *faq.State) {
	sess.Set(keyCategory, string(st.Category))
	sess.Set(keyKeyword, st.Keyword)
	sess.Set(keyOpen, strconv.Itoa(st.OpenID))
	sess.Set(keyCopied, strconv.Itoa(st.CopiedID))
	if st.CopiedAt.IsZero() {
		sess.Set(keyCopiedAt, "")
	} else {
		sess.Set(keyCopiedAt, st.CopiedAt.Format(time.RFC3339Nano))
	}
}

func getString(sess *session.Middleware, key string) string {
	s, _ := sess.Get(key).(string)
	return s
}

func getInt(sess *session.Middleware, key string) int {
	n, err := strconv.Atoi(getString(sess, key))
	if err != nil {
		return 0
	}
	return n
}
