package render_test

import (
	"strings"
	"testing"

	"inkpress/internal/infra/render"
)

func TestGoldmarkRenderer_Render(t *testing.T) {
	r := render.NewGoldmarkRenderer()

	tests := []struct {
		name     string
		markdown string
		contains string
	}{
		{name: "emphasis", markdown: "**bold** text", contains: "<strong>bold</strong>"},
		{name: "heading", markdown: "# Title", contains: "<h1>Title</h1>"},
		{name: "gfm strikethrough", markdown: "~~gone~~", contains: "<del>gone</del>"},
		{name: "plain paragraph", markdown: "hello", contains: "<p>hello</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Render(tt.markdown)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("Render(%q) = %q, want substring %q", tt.markdown, got, tt.contains)
			}
		})
	}
}

// Comment content is untrusted; raw HTML must come out escaped.
func TestGoldmarkRenderer_EscapesRawHTML(t *testing.T) {
	r := render.NewGoldmarkRenderer()

	got, err := r.Render(`<script>alert("x")</script>`)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("raw HTML passed through unescaped: %q", got)
	}
}

func TestNoOpRenderer_Render(t *testing.T) {
	r := render.NewNoOpRenderer()
	got, err := r.Render("# as-is")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got != "# as-is" {
		t.Errorf("Render() = %q, want input unchanged", got)
	}
}
