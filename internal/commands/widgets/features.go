package widgetscmd

// FeatureGates exposes runtime feature toggles required by the widget command
// handlers. Callers supply closures reading Config.Features so handlers stay
// decoupled from configuration.
type FeatureGates struct {
	MarkdownEnabled func() bool
}

func (g FeatureGates) markdownEnabled() bool {
	if g.MarkdownEnabled == nil {
		return true
	}
	return g.MarkdownEnabled()
}
