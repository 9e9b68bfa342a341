package handlers

import (
	"faqsite/internal/config"
	"faqsite/internal/faq"
)

// Style is the accent of a category: CSS classes only.
type Style struct {
	Border   string
	Chip     string
	ChipText string
	Hover    string
}

// Styles maps each bucket to its accent and optional description.
type Styles struct {
	accents      map[faq.Bucket]Style
	descriptions map[faq.Bucket]string
}

var defaultAccents = map[faq.Bucket]Style{
	faq.BucketOverview:  {Border: "border-sky-200", Chip: "bg-sky-100", ChipText: "text-sky-700", Hover: "hover:bg-sky-50"},
	faq.BucketMigration: {Border: "border-emerald-200", Chip: "bg-emerald-100", ChipText: "text-emerald-700", Hover: "hover:bg-emerald-50"},
	faq.BucketAccounts:  {Border: "border-violet-200", Chip: "bg-violet-100", ChipText: "text-violet-700", Hover: "hover:bg-violet-50"},
	faq.BucketReports:   {Border: "border-amber-200", Chip: "bg-amber-100", ChipText: "text-amber-800", Hover: "hover:bg-amber-50"},
	faq.BucketPricing:   {Border: "border-rose-200", Chip: "bg-rose-100", ChipText: "text-rose-700", Hover: "hover:bg-rose-50"},
}

// neutral is used for records whose category is not a known bucket.
var neutral = Style{Border: "border-slate-200", Chip: "bg-slate-100", ChipText: "text-slate-700", Hover: "hover:bg-slate-50"}

// NewStyles builds the style table, applying YAML overrides field by field.
// yc may be nil.
func NewStyles(yc *config.YAMLConfig) *Styles {
	s := &Styles{
		accents:      make(map[faq.Bucket]Style, len(faq.Buckets)),
		descriptions: make(map[faq.Bucket]string),
	}
	for _, b := range faq.Buckets {
		st := defaultAccents[b]
		if bc := yc.GetBucket(string(b)); bc != nil {
			st = overlay(st, bc.Style)
			if bc.Description != "" {
				s.descriptions[b] = bc.Description
			}
		}
		s.accents[b] = st
	}
	return s
}

func overlay(st Style, o config.StyleConfig) Style {
	if o.Border != "" {
		st.Border = o.Border
	}
	if o.Chip != "" {
		st.Chip = o.Chip
	}
	if o.ChipText != "" {
		st.ChipText = o.ChipText
	}
	if o.Hover != "" {
		st.Hover = o.Hover
	}
	return st
}

// For returns the accent of category. Unknown categories get a neutral style.
func (s *Styles) For(category string) Style {
	if st, ok := s.accents[faq.Bucket(category)]; ok {
		return st
	}
	return neutral
}

// Description returns the configured description of b, if any.
func (s *Styles) Description(b faq.Bucket) string {
	return s.descriptions[b]
}
