package mdfences

import (
	"context"
	"strings"
)

// Service replaces interactive fences in markdown pages with the HTML
// containers their client-side components hydrate. A Service holds no
// mutable state and is safe for concurrent use; independent pages can be
// transformed from independent goroutines with no coordination.
type Service struct {
	parser configParser
}

// New creates a Service with the default YAML fence-body parser.
func New() *Service {
	return &Service{parser: yamlConfigParser{}}
}

// Transform returns content with every recognized interactive fence
// replaced by its rendered fragment. Text outside fences is preserved byte
// for byte, and the result is deterministic for a given input.
//
// Transform never fails: a fence whose body does not parse is rendered as a
// visible warning admonition so the rest of the page still builds. If ctx
// is already cancelled the content is returned unchanged.
func (s *Service) Transform(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	matches := findFences(content)
	if len(matches) == 0 {
		return content
	}

	var b strings.Builder
	b.Grow(len(content))
	last := 0
	for _, m := range matches {
		b.WriteString(content[last:m.start])
		b.WriteString(s.renderMatch(m))
		last = m.end
	}
	b.WriteString(content[last:])
	return b.String()
}

// renderMatch converts one fence match into its replacement markup.
func (s *Service) renderMatch(m fenceMatch) string {
	cfg, err := s.parser.Parse(m.body)
	if err != nil {
		return renderWarning(m.fenceType)
	}
	return renderFragment(m.fenceType, cfg)
}

// defaultService backs the package-level Transform. It is immutable, so
// sharing it across calls introduces no cross-call state.
var defaultService = New()

// Transform replaces interactive fences in content using a default Service.
func Transform(content string) string {
	return defaultService.Transform(context.Background(), content)
}
