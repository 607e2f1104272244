// Package markdown renders comment bodies to sanitized HTML.
package markdown

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

type MarkdownService struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewMarkdownService() *MarkdownService {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Strikethrough,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "span", "pre")

	return &MarkdownService{
		md:     md,
		policy: policy,
	}
}

// Render converts markdown to sanitized HTML. On conversion failure the raw
// text is sanitized and returned as-is so a bad comment never breaks a read.
func (s *MarkdownService) Render(markdown string) string {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(markdown), &buf); err != nil {
		return s.policy.Sanitize(markdown)
	}
	return s.policy.Sanitize(buf.String())
}
