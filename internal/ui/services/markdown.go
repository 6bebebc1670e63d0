package services

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders markdown for a terminal of the given width.
type MarkdownRenderer interface {
	Render(content string, width int) (string, error)
}

// GlamourRenderer renders markdown with glamour. Renderers are built lazily and
// kept per width.
type GlamourRenderer struct {
	style string

	mu        sync.Mutex
	renderers map[int]*glamour.TermRenderer
}

// NewGlamourRenderer creates a renderer using the named glamour style
// ("dark", "light", "notty", ...). An empty style detects the terminal background.
func NewGlamourRenderer(style string) *GlamourRenderer {
	return &GlamourRenderer{style: style, renderers: map[int]*glamour.TermRenderer{}}
}

// Render implements MarkdownRenderer
func (g *GlamourRenderer) Render(content string, width int) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	r, ok := g.renderers[width]
	if !ok {
		opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
		if g.style == "" {
			opts = append(opts, glamour.WithAutoStyle())
		} else {
			opts = append(opts, glamour.WithStandardStyle(g.style))
		}
		var err error
		r, err = glamour.NewTermRenderer(opts...)
		if err != nil {
			return "", err
		}
		g.renderers[width] = r
	}
	return r.Render(content)
}

// RenderMarkdown renders content and trims the blank lines glamour adds around it.
// Content is returned unchanged when renderer is nil.
func RenderMarkdown(content string, width int, renderer MarkdownRenderer) (string, error) {
	if renderer == nil {
		return content, nil
	}
	out, err := renderer.Render(content, width)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}
