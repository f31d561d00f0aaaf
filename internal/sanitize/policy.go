// Package sanitize scrubs HTML before it enters the editor data pipeline.
package sanitize

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-richtext/pkg/interfaces"
)

var ltrOnly = regexp.MustCompile(`^ltr$`)

// Policy is a bluemonday UGC policy extended with the widget markup.
type Policy struct {
	policy *bluemonday.Policy
}

var _ interfaces.HTMLSanitizer = (*Policy)(nil)

// New returns a policy that keeps user generated content plus span elements
// carrying one of widgetClasses and the forced dir="ltr" attribute. Other
// classes are stripped.
func New(widgetClasses ...string) *Policy {
	p := bluemonday.UGCPolicy()
	if classes := quoteAll(widgetClasses); len(classes) > 0 {
		pattern := regexp.MustCompile(`^(` + strings.Join(classes, "|") + `)$`)
		p.AllowAttrs("class").Matching(pattern).OnElements("span")
	}
	p.AllowAttrs("dir").Matching(ltrOnly).OnElements("span")
	p.AllowElements("s", "u", "sub", "sup", "del", "strike")
	return &Policy{policy: p}
}

// Sanitize implements interfaces.HTMLSanitizer.
func (p *Policy) Sanitize(html string) string {
	if html == "" {
		return ""
	}
	return p.policy.Sanitize(html)
}

func quoteAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			out = append(out, regexp.QuoteMeta(value))
		}
	}
	return out
}
