// Package markdown turns Markdown sources with YAML frontmatter into HTML for
// the editor data pipeline. Raw HTML in the source is kept unless SafeMode is
// set, so widget spans written by hand survive the conversion.
package markdown
