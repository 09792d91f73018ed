package pathutil

import (
	"regexp"
	"strings"
)

// pathPattern maps a dynamic route to its normalized metrics template.
type pathPattern struct {
	pattern  *regexp.Regexp
	template string
}

// Evaluated in order from most specific to least specific.
// Pre-compiled at initialization.
var pathPatterns = []*pathPattern{
	{pattern: regexp.MustCompile(`^/api/article/\d+$`), template: "/api/article/:id"},
	{pattern: regexp.MustCompile(`^/api/comment/\d+/assess$`), template: "/api/comment/:id/assess"},
	{pattern: regexp.MustCompile(`^/api/admin/comment/\d+$`), template: "/api/admin/comment/:id"},
	{pattern: regexp.MustCompile(`^/api/page/[^/]+$`), template: "/api/page/:title"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label
// cardinality explosion. Paths with IDs or titles are converted to
// template form; static paths pass through unchanged.
//
// Examples:
//
//	NormalizePath("/api/article/123")    // "/api/article/:id"
//	NormalizePath("/api/page/about")     // "/api/page/:title"
//	NormalizePath("/api/article")        // "/api/article" (unchanged)
//	NormalizePath("/healthz")            // "/healthz" (unchanged)
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}
	return path
}
