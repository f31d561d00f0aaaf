package markdown

import (
	"strings"
	"testing"

	"github.com/goliatone/go-richtext/pkg/interfaces"
)

const templateSource = `---
title: Welcome letter
language: en
tags:
  - onboarding
  - letters
placeholders:
  - first name
  - date
custom_flag: true
---
# Welcome

Dear {first name}, **thanks** for joining on {date}. Braces like {this} stay text.
`

func TestParseFrontMatter(t *testing.T) {
	fm, body, err := ParseFrontMatter([]byte(templateSource))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if fm.Title != "Welcome letter" || fm.Language != "en" {
		t.Fatalf("unexpected frontmatter %+v", fm)
	}
	if len(fm.Tags) != 2 || fm.Tags[0] != "onboarding" {
		t.Fatalf("FrontMatter Tags mismatch: %#v", fm.Tags)
	}
	if len(fm.Placeholders) != 2 || fm.Placeholders[0] != "first name" {
		t.Fatalf("FrontMatter Placeholders mismatch: %#v", fm.Placeholders)
	}
	if fm.Custom["custom_flag"] != true {
		t.Fatalf("FrontMatter Custom flag missing: %#v", fm.Custom)
	}
	if fm.Raw["title"] != "Welcome letter" {
		t.Fatalf("FrontMatter Raw title missing: %#v", fm.Raw)
	}
	if !strings.Contains(string(body), "# Welcome") {
		t.Fatalf("Markdown body not returned correctly: %q", string(body))
	}
}

func TestParseFrontMatterWithoutHeader(t *testing.T) {
	fm, body, err := ParseFrontMatter([]byte("plain body"))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if fm.Title != "" || string(body) != "plain body" {
		t.Fatalf("expected the whole source as body, got %q", string(body))
	}
}

func TestGoldmarkParser_Parse(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.Parse([]byte("## Heading\n\nHello **world** <span class=\"placeholder\">{date}</span>"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := string(html)
	if !strings.Contains(got, "<h2>Heading</h2>") {
		t.Fatalf("expected rendered HTML to include <h2>Heading</h2>, got %q", got)
	}
	if !strings.Contains(got, "<strong>world</strong>") {
		t.Fatalf("expected rendered HTML to include <strong>, got %q", got)
	}
	if !strings.Contains(got, `<span class="placeholder">{date}</span>`) {
		t.Fatalf("expected raw widget markup to survive, got %q", got)
	}
}

func TestGoldmarkParser_ParseWithOptions(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.ParseWithOptions([]byte("line one\nline two"), interfaces.ParseOptions{
		HardWraps: true,
	})
	if err != nil {
		t.Fatalf("ParseWithOptions: %v", err)
	}
	if !strings.Contains(string(html), "line one<br>") {
		t.Fatalf("expected hard wraps in HTML output, got %q", string(html))
	}

	safe, err := parser.ParseWithOptions([]byte(`a <span class="placeholder">{x}</span>`), interfaces.ParseOptions{SafeMode: true})
	if err != nil {
		t.Fatalf("ParseWithOptions: %v", err)
	}
	if strings.Contains(string(safe), "<span") {
		t.Fatalf("expected safe mode to omit raw HTML, got %q", string(safe))
	}
}

func TestGoldmarkParser_Placeholders(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{Placeholders: []string{"date", "first name"}})

	cases := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "shorthand",
			src:  "Signed on {date}",
			want: `<p>Signed on <span class="placeholder">{date}</span></p>`,
		},
		{
			name: "token with space",
			src:  "Dear {first name},",
			want: `<p>Dear <span class="placeholder">{first name}</span>,</p>`,
		},
		{
			name: "unknown token",
			src:  "Keep {surname}",
			want: `<p>Keep {surname}</p>`,
		},
		{
			name: "unclosed brace",
			src:  "Open {date",
			want: `<p>Open {date</p>`,
		},
		{
			name: "raw widget markup",
			src:  `Hi <span class="placeholder">{date}</span>`,
			want: `<p>Hi <span class="placeholder">{date}</span></p>`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			html, err := parser.Parse([]byte(tc.src))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if got := strings.TrimSpace(string(html)); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestCollectExtensions(t *testing.T) {
	if got := collectExtensions(nil); len(got) != 3 {
		t.Fatalf("expected default extensions, got %d", len(got))
	}
	if got := collectExtensions([]string{"Table", "tables", "unknown", " "}); len(got) != 2 {
		t.Fatalf("expected aliases to count separately and unknown names ignored, got %d", len(got))
	}
}
