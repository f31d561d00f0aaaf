// Package conversion turns view trees into model trees (upcast) and model
// trees into the editing and data view trees (downcast). Converters are
// registered per stage; the editing stage also maintains the Mapper used to
// resolve view positions back into the model.
package conversion

import (
	"errors"
	"slices"
	"sort"

	"github.com/goliatone/go-richtext/internal/logging"
	"github.com/goliatone/go-richtext/internal/model"
	"github.com/goliatone/go-richtext/internal/schema"
	"github.com/goliatone/go-richtext/internal/view"
	"github.com/goliatone/go-richtext/pkg/interfaces"
)

// Stage names one direction of the pipeline.
type Stage string

const (
	Upcast          Stage = "upcast"
	EditingDowncast Stage = "editingDowncast"
	DataDowncast    Stage = "dataDowncast"
)

// ErrUnknownStage is returned for downcast requests outside the two downcast stages.
var ErrUnknownStage = errors.New("conversion: unknown stage")

// UpcastAPI is handed to upcast builders.
type UpcastAPI struct {
	Writer *model.Writer
	Schema *schema.Schema
}

// DowncastAPI is handed to downcast builders.
type DowncastAPI struct {
	Writer *view.Writer
	Stage  Stage
	Mapper *Mapper
}

// UpcastElement converts a matching view element into a model element. A nil
// result means no match and the next converter is tried.
type UpcastElement struct {
	View     view.Pattern
	Model    func(el *view.Element, api *UpcastAPI) *model.Element
	Priority int
}

// DowncastElement renders the model element named Model. The builder owns the
// element's inner view structure when the model element is an object.
type DowncastElement struct {
	Model string
	View  func(el *model.Element, api *DowncastAPI) *view.Element
}

// AttributeToElement maps a text attribute to a view attribute element in
// both directions. With ValueAttribute empty the model value is true;
// otherwise the model value is read from and written to that view attribute.
type AttributeToElement struct {
	Model            string
	View             string
	ViewAlternatives []string
	ValueAttribute   string
}

type upcastEntry struct {
	UpcastElement
	order int
}

// Conversion holds every registered converter.
type Conversion struct {
	schema     *schema.Schema
	logger     interfaces.Logger
	upcast     []upcastEntry
	downcast   map[Stage]map[string]DowncastElement
	attributes []AttributeToElement
	mapper     *Mapper
}

// Option configures a Conversion.
type Option func(*Conversion)

// WithLogger overrides the conversion logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Conversion) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New returns an empty pipeline bound to s.
func New(s *schema.Schema, opts ...Option) *Conversion {
	c := &Conversion{
		schema: s,
		logger: logging.NoOp(),
		downcast: map[Stage]map[string]DowncastElement{
			EditingDowncast: {},
			DataDowncast:    {},
		},
		mapper: NewMapper(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Mapper returns the editing-stage mapper.
func (c *Conversion) Mapper() *Mapper { return c.mapper }

// Schema returns the schema used for upcast checks.
func (c *Conversion) Schema() *schema.Schema { return c.schema }

// UpcastHelpers registers upcast converters.
type UpcastHelpers struct{ conv *Conversion }

// ForUpcast returns the upcast registration helpers.
func (c *Conversion) ForUpcast() UpcastHelpers { return UpcastHelpers{conv: c} }

// ElementToElement registers an element converter.
func (h UpcastHelpers) ElementToElement(def UpcastElement) UpcastHelpers {
	if def.Model == nil {
		return h
	}
	c := h.conv
	c.upcast = append(c.upcast, upcastEntry{UpcastElement: def, order: len(c.upcast)})
	sort.SliceStable(c.upcast, func(i, j int) bool {
		if c.upcast[i].Priority != c.upcast[j].Priority {
			return c.upcast[i].Priority > c.upcast[j].Priority
		}
		return c.upcast[i].order < c.upcast[j].order
	})
	return h
}

// DowncastHelpers registers converters for one downcast stage.
type DowncastHelpers struct {
	conv  *Conversion
	stage Stage
}

// ForDowncast returns the registration helpers for stage.
func (c *Conversion) ForDowncast(stage Stage) DowncastHelpers {
	return DowncastHelpers{conv: c, stage: stage}
}

// ElementToElement registers an element converter for the helper's stage.
func (h DowncastHelpers) ElementToElement(def DowncastElement) DowncastHelpers {
	if converters, ok := h.conv.downcast[h.stage]; ok && def.View != nil {
		converters[def.Model] = def
	}
	return h
}

// AttributeToElement registers a formatting converter for every stage.
// Registration order is the nesting order of downcast wrappers, outermost first.
func (c *Conversion) AttributeToElement(def AttributeToElement) {
	if def.Model == "" || def.View == "" {
		return
	}
	c.attributes = append(c.attributes, def)
}

func (c *Conversion) attributeFor(el *view.Element) (AttributeToElement, any, bool) {
	for _, def := range c.attributes {
		if el.Name() != def.View && !slices.Contains(def.ViewAlternatives, el.Name()) {
			continue
		}
		if def.ValueAttribute == "" {
			return def, true, true
		}
		if value, ok := el.Attribute(def.ValueAttribute); ok && value != "" {
			return def, value, true
		}
	}
	return AttributeToElement{}, nil, false
}
