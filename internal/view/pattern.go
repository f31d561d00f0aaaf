package view

// Pattern selects view elements during upcast. Empty fields match anything.
type Pattern struct {
	Name       string
	Classes    []string
	Attributes map[string]string
}

// Match reports whether el satisfies every constraint in the pattern.
func (p Pattern) Match(el *Element) bool {
	if el == nil || el.kind == KindRoot {
		return false
	}
	if p.Name != "" && p.Name != el.name {
		return false
	}
	for _, class := range p.Classes {
		if !el.HasClass(class) {
			return false
		}
	}
	for key, want := range p.Attributes {
		got, ok := el.Attribute(key)
		if !ok || (want != "" && got != want) {
			return false
		}
	}
	return true
}

// Specificity ranks patterns so more precise matchers run first.
func (p Pattern) Specificity() int {
	score := len(p.Classes) + len(p.Attributes)
	if p.Name != "" {
		score++
	}
	return score
}
