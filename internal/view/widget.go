package view

const (
	// WidgetClass marks widget roots in the editing view.
	WidgetClass = "ck-widget"
	// WidgetProperty is the custom property set on widget roots.
	WidgetProperty = "widget"
)

// ToWidget marks el as a non-editable widget root in the editing view.
func ToWidget(w *Writer, el *Element) *Element {
	w.SetAttribute("contenteditable", "false", el)
	w.AddClass(WidgetClass, el)
	w.SetCustomProperty(WidgetProperty, true, el)
	return el
}

// IsWidget reports whether el was produced by ToWidget.
func IsWidget(el *Element) bool {
	if el == nil {
		return false
	}
	value, ok := el.CustomProperty(WidgetProperty)
	flag, _ := value.(bool)
	return ok && flag
}
