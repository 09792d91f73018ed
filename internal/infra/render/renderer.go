// Package render provides abstraction for converting markdown source to
// display HTML. It defines the Renderer interface so the read path and
// notification templates stay decoupled from the concrete markdown engine.
package render

// Renderer converts markdown source to display markup.
type Renderer interface {
	// Render converts markdown text to HTML. Raw HTML in the source is
	// escaped, not passed through; comment content is untrusted input.
	Render(markdown string) (string, error)
}
