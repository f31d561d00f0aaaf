package markdown

import (
	"bytes"
	"slices"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// KindPlaceholder is the goldmark node kind for {token} shorthand.
var KindPlaceholder = ast.NewNodeKind("Placeholder")

// PlaceholderNode is an inline {token} reference to a known placeholder.
type PlaceholderNode struct {
	ast.BaseInline
	Name []byte
}

// Kind implements ast.Node.
func (n *PlaceholderNode) Kind() ast.NodeKind { return KindPlaceholder }

// Dump implements ast.Node.
func (n *PlaceholderNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Name": string(n.Name)}, nil)
}

type placeholderParser struct {
	tokens [][]byte
}

func (p *placeholderParser) Trigger() []byte { return []byte{'{'} }

func (p *placeholderParser) Parse(parent ast.Node, block text.Reader, _ parser.Context) ast.Node {
	if insideWidgetMarkup(parent, block.Source()) {
		return nil
	}
	line, _ := block.PeekLine()
	end := bytes.IndexByte(line, '}')
	if end < 1 {
		return nil
	}
	name := line[1:end]
	if !slices.ContainsFunc(p.tokens, func(token []byte) bool { return bytes.Equal(token, name) }) {
		return nil
	}
	block.Advance(end + 1)
	return &PlaceholderNode{Name: bytes.Clone(name)}
}

// insideWidgetMarkup reports whether the previous sibling opens a raw
// placeholder span, so {token} already sits inside widget markup.
func insideWidgetMarkup(parent ast.Node, source []byte) bool {
	raw, ok := parent.LastChild().(*ast.RawHTML)
	if !ok || raw.Segments.Len() == 0 {
		return false
	}
	seg := raw.Segments.At(raw.Segments.Len() - 1)
	tag := seg.Value(source)
	return bytes.HasPrefix(tag, []byte("<span")) && bytes.Contains(tag, []byte("placeholder"))
}

type placeholderRenderer struct{}

func (placeholderRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindPlaceholder, renderPlaceholder)
}

// renderPlaceholder writes the serialised placeholder widget form.
func renderPlaceholder(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*PlaceholderNode)
	_, _ = w.WriteString(`<span class="placeholder">{`)
	_, _ = w.Write(util.EscapeHTML(n.Name))
	_, _ = w.WriteString(`}</span>`)
	return ast.WalkSkipChildren, nil
}

// placeholderExtension turns {token} into a placeholder span for the listed
// tokens only; other braces stay text.
type placeholderExtension struct {
	tokens []string
}

func (e placeholderExtension) Extend(m goldmark.Markdown) {
	tokens := make([][]byte, 0, len(e.tokens))
	for _, token := range e.tokens {
		if token != "" {
			tokens = append(tokens, []byte(token))
		}
	}
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(&placeholderParser{tokens: tokens}, 500),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(placeholderRenderer{}, 500),
	))
}
