package conversion

import (
	"maps"
	"strings"

	"github.com/goliatone/go-richtext/internal/model"
	"github.com/goliatone/go-richtext/internal/schema"
	"github.com/goliatone/go-richtext/internal/view"
)

// Upcast converts the children of fragment and appends the result to into.
// It must run inside a model change.
//
// Elements try element converters by priority, then attribute converters;
// anything else is unwrapped. Inline content that into cannot hold is wrapped
// in an automatic paragraph, and content the schema rejects is dropped.
func (c *Conversion) Upcast(fragment *view.Element, w *model.Writer, into *model.Element) error {
	u := &upcaster{conv: c, api: &UpcastAPI{Writer: w, Schema: c.schema}}
	p := &placer{u: u, into: into}
	if err := u.children(fragment, nil, p); err != nil {
		return err
	}
	c.logger.Debug("conversion.upcast.completed", "children", into.ChildCount())
	return nil
}

type upcaster struct {
	conv *Conversion
	api  *UpcastAPI
}

func (u *upcaster) children(from *view.Element, attrs map[string]any, p *placer) error {
	for _, child := range from.Children() {
		switch node := child.(type) {
		case *view.Text:
			if err := u.text(node, attrs, p); err != nil {
				return err
			}
		case *view.Element:
			if err := u.element(node, attrs, p); err != nil {
				return err
			}
		}
	}
	return nil
}

func (u *upcaster) text(node *view.Text, attrs map[string]any, p *placer) error {
	data := node.Data()
	if data == "" {
		return nil
	}
	if p.auto == nil && !u.conv.schema.CheckChild(p.into, schema.Text) && strings.TrimSpace(data) == "" {
		return nil
	}
	_, err := p.place(u.api.Writer.CreateText(data, u.allowed(schema.Text, attrs)))
	return err
}

func (u *upcaster) element(el *view.Element, attrs map[string]any, p *placer) error {
	for _, entry := range u.conv.upcast {
		if !entry.View.Match(el) {
			continue
		}
		converted := entry.Model(el, u.api)
		if converted == nil {
			continue
		}
		for key, value := range u.allowed(converted.Name(), attrs) {
			if !converted.HasAttribute(key) {
				if err := u.api.Writer.SetAttribute(key, value, converted); err != nil {
					return err
				}
			}
		}
		placed, err := p.place(converted)
		if err != nil || !placed {
			return err
		}
		if u.conv.schema.IsObject(converted.Name()) {
			return nil
		}
		return u.children(el, attrs, &placer{u: u, into: converted})
	}

	if def, value, ok := u.conv.attributeFor(el); ok {
		next := maps.Clone(attrs)
		if next == nil {
			next = map[string]any{}
		}
		next[def.Model] = value
		return u.children(el, next, p)
	}

	return u.children(el, attrs, p)
}

func (u *upcaster) allowed(item string, attrs map[string]any) map[string]any {
	out := map[string]any{}
	for key, value := range attrs {
		if u.conv.schema.CheckAttribute(item, key) {
			out[key] = value
		}
	}
	return out
}

// placer appends converted nodes to one model parent, opening an automatic
// paragraph for inline content the parent cannot hold directly.
type placer struct {
	u    *upcaster
	into *model.Element
	auto *model.Element
}

func (p *placer) place(node model.Node) (bool, error) {
	s := p.u.conv.schema
	w := p.u.api.Writer
	name := model.NodeName(node)

	if s.CheckChild(p.into, name) {
		p.auto = nil
		return true, w.Append(node, p.into)
	}
	if p.auto != nil && s.CheckChild(p.auto, name) {
		return true, w.Append(node, p.auto)
	}
	if s.IsInline(name) && s.CheckChild(p.into, model.ParagraphName) && s.CheckChildOf(model.ParagraphName, name) {
		p.auto = w.CreateElement(model.ParagraphName, nil)
		if err := w.Append(p.auto, p.into); err != nil {
			return false, err
		}
		return true, w.Append(node, p.auto)
	}
	p.u.conv.logger.Debug("conversion.upcast.dropped", "item", name, "parent", p.into.Name())
	return false, nil
}
