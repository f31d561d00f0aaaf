package view

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseHTML parses an HTML fragment into a view fragment. Every element is
// created as a container; upcast converters decide what it means. Comments
// and doctype nodes are dropped.
func ParseHTML(src string) (*Element, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(src), context)
	if err != nil {
		return nil, fmt.Errorf("view: parse html: %w", err)
	}
	root := NewFragment()
	for _, node := range nodes {
		appendParsed(root, node)
	}
	return root, nil
}

func appendParsed(parent *Element, node *html.Node) {
	switch node.Type {
	case html.TextNode:
		if node.Data != "" {
			parent.insertAt(len(parent.children), &Text{data: node.Data})
		}
	case html.ElementNode:
		attrs := make(map[string]string, len(node.Attr))
		for _, attr := range node.Attr {
			if attr.Namespace == "" {
				attrs[attr.Key] = attr.Val
			}
		}
		el := newElement(node.Data, KindContainer, attrs)
		parent.insertAt(len(parent.children), el)
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			appendParsed(el, child)
		}
	}
}

// RenderHTML serialises the children of root. Attributes are written class
// first, then the rest sorted by name, so equal trees render identically.
func RenderHTML(root *Element) (string, error) {
	var b strings.Builder
	for _, child := range root.children {
		if err := html.Render(&b, toHTML(child)); err != nil {
			return "", fmt.Errorf("view: render html: %w", err)
		}
	}
	return b.String(), nil
}

func toHTML(node Node) *html.Node {
	switch typed := node.(type) {
	case *Text:
		return &html.Node{Type: html.TextNode, Data: typed.data}
	case *Element:
		out := &html.Node{Type: html.ElementNode, Data: typed.name, DataAtom: atom.Lookup([]byte(typed.name))}
		for _, key := range typed.AttributeKeys() {
			value, _ := typed.Attribute(key)
			out.Attr = append(out.Attr, html.Attribute{Key: key, Val: value})
		}
		for _, child := range typed.children {
			out.AppendChild(toHTML(child))
		}
		return out
	}
	return &html.Node{Type: html.TextNode}
}

func splitClasses(value string) []string { return strings.Fields(value) }
