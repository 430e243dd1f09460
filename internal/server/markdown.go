package server

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/aitechdigest/digest/internal/outline"
)

// headingAnchors assigns IDs to rendered ## and ### headings using the same
// derivation as the outline extractor, so table-of-contents links always
// land on their target heading.
type headingAnchors struct{}

func (headingAnchors) Transform(doc *gast.Document, reader text.Reader, _ parser.Context) {
	_ = gast.Walk(doc, func(n gast.Node, entering bool) (gast.WalkStatus, error) {
		if !entering {
			return gast.WalkContinue, nil
		}
		if h, ok := n.(*gast.Heading); ok && (h.Level == 2 || h.Level == 3) {
			id := outline.Slugify(string(h.Text(reader.Source())))
			h.SetAttributeString("id", []byte(id))
		}
		return gast.WalkContinue, nil
	})
}

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(
		parser.WithASTTransformers(util.Prioritized(headingAnchors{}, 100)),
	),
)

func renderMarkdown(text string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(text), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(buf.String()) //nolint: gosec
}
