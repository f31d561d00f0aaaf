package interfaces

// HTMLSanitizer cleans untrusted HTML before it reaches the upcast pipeline.
// Implementations must keep the markup the registered converters rely on,
// such as widget span classes and the dir attribute.
type HTMLSanitizer interface {
	Sanitize(html string) string
}
