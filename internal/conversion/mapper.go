package conversion

import (
	"errors"

	"github.com/goliatone/go-richtext/internal/model"
	"github.com/goliatone/go-richtext/internal/view"
)

// ErrUnmappedPosition is returned when a view position has no mapped ancestor.
var ErrUnmappedPosition = errors.New("conversion: view position is not mapped")

// PositionData is passed through the view-to-model hooks. A hook resolves the
// position by setting ModelPosition.
type PositionData struct {
	ViewPosition  view.Position
	Mapper        *Mapper
	ModelPosition *model.Position
}

// PositionHook customises view-to-model position mapping.
type PositionHook func(data *PositionData)

// Mapper links model elements to the editing view elements rendered for them.
type Mapper struct {
	modelToView map[*model.Element]*view.Element
	viewToModel map[*view.Element]*model.Element
	hooks       []PositionHook
}

// NewMapper returns an empty mapper.
func NewMapper() *Mapper {
	return &Mapper{
		modelToView: map[*model.Element]*view.Element{},
		viewToModel: map[*view.Element]*model.Element{},
	}
}

// Bind records that viewEl renders modelEl.
func (m *Mapper) Bind(modelEl *model.Element, viewEl *view.Element) {
	m.modelToView[modelEl] = viewEl
	m.viewToModel[viewEl] = modelEl
}

// Clear drops every binding. Hooks are kept.
func (m *Mapper) Clear() {
	clear(m.modelToView)
	clear(m.viewToModel)
}

// ToViewElement returns the view element bound to el.
func (m *Mapper) ToViewElement(el *model.Element) *view.Element { return m.modelToView[el] }

// ToModelElement returns the model element bound to el.
func (m *Mapper) ToModelElement(el *view.Element) *model.Element { return m.viewToModel[el] }

// FindMappedViewAncestor returns the nearest bound element containing pos.
func (m *Mapper) FindMappedViewAncestor(pos view.Position) *view.Element {
	for _, el := range pos.Ancestors() {
		if _, ok := m.viewToModel[el]; ok {
			return el
		}
	}
	return nil
}

// OnViewToModelPosition registers a hook. Hooks run in registration order and
// the first one to set ModelPosition wins.
func (m *Mapper) OnViewToModelPosition(hook PositionHook) {
	if hook != nil {
		m.hooks = append(m.hooks, hook)
	}
}

// ToModelPosition maps a view position into the model.
func (m *Mapper) ToModelPosition(pos view.Position) (model.Position, error) {
	data := &PositionData{ViewPosition: pos, Mapper: m}
	for _, hook := range m.hooks {
		hook(data)
		if data.ModelPosition != nil {
			return *data.ModelPosition, nil
		}
	}

	ancestor := m.FindMappedViewAncestor(pos)
	if ancestor == nil {
		return model.Position{}, ErrUnmappedPosition
	}
	modelEl := m.viewToModel[ancestor]
	offset := min(m.offsetWithin(ancestor, pos), modelEl.MaxOffset())
	return model.PositionAt(modelEl, offset), nil
}

type indexed interface {
	view.Node
	Index() int
}

// offsetWithin counts the model offset of pos inside ancestor. Bound elements
// count as one; unbound wrappers are transparent.
func (m *Mapper) offsetWithin(ancestor *view.Element, pos view.Position) int {
	offset := 0
	var node indexed
	switch parent := pos.Parent.(type) {
	case *view.Text:
		offset = pos.Offset
		node = parent
	case *view.Element:
		for i := 0; i < pos.Offset && i < parent.ChildCount(); i++ {
			offset += m.modelLength(parent.Child(i))
		}
		node = parent
	default:
		return 0
	}
	for node != nil && node != indexed(ancestor) {
		parent := node.Parent()
		if parent == nil {
			break
		}
		for i := 0; i < node.Index(); i++ {
			offset += m.modelLength(parent.Child(i))
		}
		node = parent
	}
	return offset
}

func (m *Mapper) modelLength(node view.Node) int {
	switch typed := node.(type) {
	case *view.Text:
		return len([]rune(typed.Data()))
	case *view.Element:
		if _, ok := m.viewToModel[typed]; ok {
			return 1
		}
		total := 0
		for _, child := range typed.Children() {
			total += m.modelLength(child)
		}
		return total
	}
	return 0
}
