package schema

type merged struct {
	allowIn     []string
	where       []string
	contentOf   []string
	attributes  []string
	attrsOf     []string
	inheritFrom []string
	isBlock     bool
	isInline    bool
	isObject    bool
	isLimit     bool
}

func (s *Schema) resolve() map[string]*compiled {
	s.mu.RLock()
	if s.compiled != nil {
		defer s.mu.RUnlock()
		return s.compiled
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.compiled == nil {
		s.compiled = s.compile()
	}
	return s.compiled
}

// compile flattens every definition into allow sets. References are applied
// until nothing changes, so chains like allowWhere -> allowContentOf resolve
// regardless of registration order. References to unknown items are ignored.
func (s *Schema) compile() map[string]*compiled {
	defs := make(map[string]*merged, len(s.definitions))
	for name, parts := range s.definitions {
		m := &merged{}
		for _, def := range parts {
			m.allowIn = append(m.allowIn, def.AllowIn...)
			m.attributes = append(m.attributes, def.AllowAttributes...)
			if def.AllowWhere != "" {
				m.where = append(m.where, def.AllowWhere)
			}
			if def.AllowContentOf != "" {
				m.contentOf = append(m.contentOf, def.AllowContentOf)
			}
			if def.AllowAttributesOf != "" {
				m.attrsOf = append(m.attrsOf, def.AllowAttributesOf)
			}
			if def.InheritAllFrom != "" {
				m.inheritFrom = append(m.inheritFrom, def.InheritAllFrom)
			}
			m.isBlock = m.isBlock || def.IsBlock
			m.isInline = m.isInline || def.IsInline
			m.isObject = m.isObject || def.IsObject
			m.isLimit = m.isLimit || def.IsLimit
		}
		defs[name] = m
	}

	out := make(map[string]*compiled, len(defs))
	for name, m := range defs {
		c := &compiled{
			allowIn:    map[string]struct{}{},
			attributes: map[string]struct{}{},
			isBlock:    m.isBlock,
			isInline:   m.isInline,
			isObject:   m.isObject,
			isLimit:    m.isLimit,
		}
		for _, parent := range m.allowIn {
			c.allowIn[parent] = struct{}{}
		}
		for _, attr := range m.attributes {
			c.attributes[attr] = struct{}{}
		}
		out[name] = c
	}

	for name, m := range defs {
		for _, source := range m.inheritFrom {
			if from, ok := defs[source]; ok {
				c := out[name]
				c.isBlock = c.isBlock || from.isBlock
				c.isInline = c.isInline || from.isInline
				c.isObject = c.isObject || from.isObject
				c.isLimit = c.isLimit || from.isLimit
			}
		}
	}

	for changed := true; changed; {
		changed = false
		for name, m := range defs {
			target := out[name]
			for _, source := range append(append([]string{}, m.where...), m.inheritFrom...) {
				if from, ok := out[source]; ok {
					changed = union(target.allowIn, from.allowIn) || changed
				}
			}
			for _, source := range append(append([]string{}, m.attrsOf...), m.inheritFrom...) {
				if from, ok := out[source]; ok {
					changed = union(target.attributes, from.attributes) || changed
				}
			}
			for _, source := range append(append([]string{}, m.contentOf...), m.inheritFrom...) {
				if _, ok := out[source]; !ok {
					continue
				}
				for _, child := range out {
					if _, allowed := child.allowIn[source]; !allowed {
						continue
					}
					if _, present := child.allowIn[name]; !present {
						child.allowIn[name] = struct{}{}
						changed = true
					}
				}
			}
		}
	}
	return out
}

func union(dst, src map[string]struct{}) bool {
	changed := false
	for key := range src {
		if _, ok := dst[key]; !ok {
			dst[key] = struct{}{}
			changed = true
		}
	}
	return changed
}
