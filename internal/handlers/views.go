package handlers

import (
	"html/template"
	"net/url"
	"strings"
	"time"

	"faqsite/internal/faq"
	"faqsite/internal/markdown"
)

// LinkItem is a compact record entry that jumps into a filtered view.
type LinkItem struct {
	ID        int
	Category  string
	Question  string
	UpdatedAt string
	Href      string
}

// CategoryCard is a landing tile for one bucket.
type CategoryCard struct {
	Bucket      faq.Bucket
	Count       int
	Description string
	Style       Style
}

// PreviewSection is the landing preview of one bucket.
type PreviewSection struct {
	Bucket faq.Bucket
	Style  Style
	Items  []LinkItem
}

// LandingView is the default page body.
type LandingView struct {
	Categories []CategoryCard
	Recent     []LinkItem
	Previews   []PreviewSection
}

// Pill is a category tab in the results view.
type Pill struct {
	Label  string
	Value  string
	Count  int
	Active bool
}

// Card is an expandable answer card.
type Card struct {
	ID         int
	Question   string
	AnswerHTML template.HTML
	Tags       []string
	UpdatedAt  string
	Open       bool
	Copied     bool
	Style      Style
}

// Section is a group of cards under one bucket heading.
type Section struct {
	Bucket faq.Bucket
	Cards  []Card
}

// ResultsView is the page body while a filter is active.
type ResultsView struct {
	Pills    []Pill
	Sections []Section
	Filtered bool
}

// questionHint is the search term used when jumping from a preview: the
// question up to its first space.
func questionHint(question string) string {
	hint, _, _ := strings.Cut(question, " ")
	return hint
}

func linkItem(r faq.Record) LinkItem {
	v := url.Values{}
	v.Set("category", r.Category)
	v.Set("q", questionHint(r.Question))
	return LinkItem{
		ID:        r.ID,
		Category:  r.Category,
		Question:  r.Question,
		UpdatedAt: r.UpdatedAt,
		Href:      "/?" + v.Encode(),
	}
}

func buildLanding(l faq.Landing, styles *Styles) *LandingView {
	v := &LandingView{}
	for _, b := range faq.Buckets {
		v.Categories = append(v.Categories, CategoryCard{
			Bucket:      b,
			Count:       l.Counts[b],
			Description: styles.Description(b),
			Style:       styles.For(string(b)),
		})
	}
	for _, r := range l.Recent {
		v.Recent = append(v.Recent, linkItem(r))
	}
	for _, p := range l.Previews {
		sec := PreviewSection{Bucket: p.Bucket, Style: styles.For(string(p.Bucket))}
		for _, r := range p.Items {
			sec.Items = append(sec.Items, linkItem(r))
		}
		v.Previews = append(v.Previews, sec)
	}
	return v
}

// cardBuilder turns records into cards for one visitor's state.
type cardBuilder struct {
	state  *faq.State
	styles *Styles
	now    time.Time
	ttl    time.Duration
}

func (b cardBuilder) card(r faq.Record) Card {
	c := Card{
		ID:        r.ID,
		Question:  r.Question,
		Tags:      r.Tags,
		UpdatedAt: r.UpdatedAt,
		Open:      b.state.IsOpen(r.ID),
		Copied:    b.state.CopiedVisible(r.ID, b.now, b.ttl),
		Style:     b.styles.For(r.Category),
	}
	// only open cards show the answer
	if c.Open {
		c.AnswerHTML = markdown.ToHTML(r.Answer)
	}
	return c
}

func (b cardBuilder) results(res faq.Result, counts map[faq.Bucket]int) *ResultsView {
	v := &ResultsView{Filtered: b.state.Active()}

	v.Pills = append(v.Pills, Pill{
		Label:  string(faq.All),
		Value:  string(faq.All),
		Count:  res.Total,
		Active: res.Query.Category == faq.All,
	})
	for _, bk := range faq.Buckets {
		v.Pills = append(v.Pills, Pill{
			Label:  string(bk),
			Value:  string(bk),
			Count:  counts[bk],
			Active: res.Query.Category == bk,
		})
	}

	// With All every non-empty bucket is shown; otherwise only the chosen one.
	buckets := faq.Buckets
	if res.Query.Category != faq.All {
		buckets = []faq.Bucket{res.Query.Category}
	}
	for _, bk := range buckets {
		items := res.Groups[bk]
		if len(items) == 0 {
			continue
		}
		sec := Section{Bucket: bk}
		for _, r := range items {
			sec.Cards = append(sec.Cards, b.card(r))
		}
		v.Sections = append(v.Sections, sec)
	}
	return v
}
