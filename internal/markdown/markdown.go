// Package markdown renders FAQ answers to HTML.
package markdown

import (
	"bytes"
	"html/template"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// The goldmark instance is stateless between conversions and safe to share.
var (
	md     goldmark.Markdown
	mdOnce sync.Once
)

func converter() goldmark.Markdown {
	mdOnce.Do(func() {
		md = goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
			),
			// Answers are written with single newlines between lines.
			goldmark.WithRendererOptions(
				html.WithHardWraps(),
			),
		)
	})
	return md
}

// ToHTML converts answer markdown to HTML. Raw HTML in the source is
// omitted. On conversion failure the escaped source is returned.
func ToHTML(source string) template.HTML {
	if source == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := converter().Convert([]byte(source), &buf); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(source) + "</p>")
	}
	return template.HTML(buf.String())
}
