package render

// NoOpRenderer returns markdown source unchanged. It is used in tests
// and when rendering is delegated to the front-end.
type NoOpRenderer struct{}

// NewNoOpRenderer creates a new NoOpRenderer instance.
func NewNoOpRenderer() *NoOpRenderer {
	return &NoOpRenderer{}
}

// Render returns the input unchanged.
func (r *NoOpRenderer) Render(markdown string) (string, error) {
	return markdown, nil
}
