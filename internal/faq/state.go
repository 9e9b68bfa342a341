package faq

import (
	"strings"
	"time"
)

// State is the interaction state of one visitor. The cells are independent:
// changing the filter or keyword leaves the open card alone, only ClearAll
// resets everything.
type State struct {
	Category Bucket
	Keyword  string
	OpenID   int // 0 when no card is open
	CopiedID int // 0 when nothing was copied
	CopiedAt time.Time
}

// Query returns the filter implied by the state.
func (s *State) Query() Query {
	cat := s.Category
	if cat == "" {
		cat = All
	}
	return Query{Category: cat, Keyword: s.Keyword}
}

// SetCategory changes the category filter.
func (s *State) SetCategory(b Bucket) {
	s.Category = b
}

// SetKeyword changes the keyword.
func (s *State) SetKeyword(kw string) {
	s.Keyword = kw
}

// AppendTag adds tag to the keyword, separated by a space.
func (s *State) AppendTag(tag string) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return
	}
	if s.Keyword == "" {
		s.Keyword = tag
		return
	}
	s.Keyword = s.Keyword + " " + tag
}

// Toggle opens card id, or closes it if it is already open. At most one card
// is open at a time.
func (s *State) Toggle(id int) {
	if s.OpenID == id {
		s.OpenID = 0
		return
	}
	s.OpenID = id
}

// IsOpen reports whether card id is expanded.
func (s *State) IsOpen(id int) bool {
	return id != 0 && s.OpenID == id
}

// ClearAll resets the filters and closes the open card.
func (s *State) ClearAll() {
	s.Category = All
	s.Keyword = ""
	s.OpenID = 0
}

// MarkCopied starts (or restarts) the copied acknowledgement for id.
func (s *State) MarkCopied(id int, now time.Time) {
	s.CopiedID = id
	s.CopiedAt = now
}

// CopiedVisible reports whether the acknowledgement for id is still showing.
func (s *State) CopiedVisible(id int, now time.Time, ttl time.Duration) bool {
	if id == 0 || s.CopiedID != id {
		return false
	}
	return now.Sub(s.CopiedAt) < ttl
}

// Active reports whether any filter is set.
func (s *State) Active() bool {
	return !IsLanding(s.Query())
}
