// Package widgets implements the atomic inline widgets of the editor: the
// named placeholder token and the forced left-to-right text wrapper. Each
// kind is described once by a Descriptor; schema registration, converters,
// the insertion command and the position hook are all derived from it.
package widgets

import "errors"

// Kind names a widget. It is also the model element name, the command name
// and the toolbar component name.
type Kind string

const (
	KindPlaceholder       Kind = "placeholder"
	KindDirectionOverride Kind = "ignoreDirection"
)

// Attribute names carried by widget elements.
const (
	AttributeName    = "name"
	AttributeTextVal = "textVal"
)

// DefaultDirectionLabel is the fixed name given to imported direction overrides.
const DefaultDirectionLabel = "Apply Left-to-Right"

var (
	// ErrDuplicateKind is returned when a kind is registered twice.
	ErrDuplicateKind = errors.New("widgets: duplicate kind")
	// ErrUnknownKind is returned for lookups of unregistered kinds.
	ErrUnknownKind = errors.New("widgets: unknown kind")
	// ErrInvalidDescriptor is returned for descriptors missing required fields.
	ErrInvalidDescriptor = errors.New("widgets: invalid descriptor")
	// ErrInvalidDocument is returned when a document breaks widget invariants.
	ErrInvalidDocument = errors.New("widgets: invalid document")
)

// String implements fmt.Stringer.
func (k Kind) String() string { return string(k) }
