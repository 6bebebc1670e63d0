package weather

import (
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
)

// Markdown converts forecast page html to markdown. Scripts, styles and
// embedded media are dropped; tables are kept.
type Markdown struct {
	conv *md.Converter
}

// NewMarkdown returns a converter that resolves relative links against domain.
func NewMarkdown(domain string) *Markdown {
	conv := md.NewConverter(domain, true, nil)
	conv.Use(plugin.GitHubFlavored())
	conv.Remove("script", "style", "noscript", "svg", "iframe", "img", "form", "button")
	return &Markdown{conv: conv}
}

// Convert renders html as markdown.
func (m *Markdown) Convert(html string) (string, error) {
	out, err := m.conv.ConvertString(html)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
