package conversion

import (
	"fmt"
	"maps"

	"github.com/goliatone/go-richtext/internal/model"
	"github.com/goliatone/go-richtext/internal/view"
)

// Downcast renders the children of root into a new view fragment for stage.
// The editing stage rebinds the Mapper from scratch.
//
// Model elements without a converter for stage are skipped with their
// content. Children of objects are never visited; their converter renders
// them. Text and inline elements are wrapped in attribute elements for every
// registered formatting attribute they carry, and adjacent equal wrappers are
// merged.
func (c *Conversion) Downcast(stage Stage, root *model.Element) (*view.Element, error) {
	if stage != EditingDowncast && stage != DataDowncast {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStage, stage)
	}
	d := &downcaster{
		conv:       c,
		converters: c.downcast[stage],
		api:        &DowncastAPI{Writer: view.NewWriter(), Stage: stage},
	}
	fragment := view.NewFragment()
	if stage == EditingDowncast {
		c.mapper.Clear()
		c.mapper.Bind(root, fragment)
		d.api.Mapper = c.mapper
	}
	d.children(root, fragment)
	c.logger.Debug("conversion.downcast.completed", "stage", string(stage), "children", fragment.ChildCount())
	return fragment, nil
}

type downcaster struct {
	conv       *Conversion
	converters map[string]DowncastElement
	api        *DowncastAPI
}

func (d *downcaster) children(from *model.Element, into *view.Element) {
	for _, child := range from.Children() {
		switch node := child.(type) {
		case *model.Text:
			d.append(into, d.wrap(d.api.Writer.CreateText(node.Data()), node.Attributes()))
		case *model.Element:
			d.element(node, into)
		}
	}
}

func (d *downcaster) element(el *model.Element, into *view.Element) {
	converter, ok := d.converters[el.Name()]
	if !ok {
		d.conv.logger.Debug("conversion.downcast.skipped", "item", el.Name())
		return
	}
	rendered := converter.View(el, d.api)
	if rendered == nil {
		return
	}
	if d.api.Mapper != nil {
		d.api.Mapper.Bind(el, rendered)
	}
	s := d.conv.schema
	if !s.IsObject(el.Name()) {
		d.children(el, rendered)
	}
	if s.IsInline(el.Name()) {
		d.append(into, d.wrap(rendered, el.Attributes()))
		return
	}
	d.append(into, rendered)
}

// wrap nests node in one attribute element per formatting attribute present
// in attrs, outermost first in registration order.
func (d *downcaster) wrap(node view.Node, attrs map[string]any) view.Node {
	w := d.api.Writer
	for i := len(d.conv.attributes) - 1; i >= 0; i-- {
		def := d.conv.attributes[i]
		value, ok := attrs[def.Model]
		if !ok || value == nil || value == false {
			continue
		}
		viewAttrs := map[string]string{}
		if def.ValueAttribute != "" {
			viewAttrs[def.ValueAttribute] = fmt.Sprint(value)
		}
		wrapper := w.CreateAttributeElement(def.View, viewAttrs)
		w.Append(wrapper, node)
		node = wrapper
	}
	return node
}

// append adds node to parent, merging it into a trailing attribute element
// with the same name and attributes.
func (d *downcaster) append(parent *view.Element, node view.Node) {
	w := d.api.Writer
	incoming, ok := node.(*view.Element)
	if ok && incoming.IsAttributeElement() && parent.ChildCount() > 0 {
		if last, ok := parent.Child(parent.ChildCount() - 1).(*view.Element); ok && sameWrapper(last, incoming) {
			for _, child := range incoming.Children() {
				w.Remove(child)
				d.append(last, child)
			}
			return
		}
	}
	w.Append(parent, node)
}

func sameWrapper(a, b *view.Element) bool {
	return a.IsAttributeElement() && b.IsAttributeElement() &&
		a.Name() == b.Name() && maps.Equal(a.Attributes(), b.Attributes())
}
