package weather

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Cyclone1070/weatheragent/internal/provider"
)

// Selector picks the best matching option for a search query.
// It returns a 1-based option number.
type Selector interface {
	Select(ctx context.Context, query string, options []Option) (int, error)
}

// SelectWithFallback asks sel for the best option and falls back to the first
// option on any fault or out-of-range answer.
func SelectWithFallback(ctx context.Context, sel Selector, query string, options []Option, logger *slog.Logger) (Option, error) {
	if len(options) == 0 {
		return Option{}, ErrNoOptions
	}
	if sel == nil {
		return options[0], nil
	}

	n, err := sel.Select(ctx, query, options)
	switch {
	case err != nil:
		logger.Warn("location selection failed, using first option", "query", query, "error", err)
	case n < 1 || n > len(options):
		logger.Warn("location selection out of range, using first option", "query", query, "choice", n, "options", len(options))
	default:
		return options[n-1], nil
	}
	return options[0], nil
}

// LLMSelector asks a chat model to pick the option.
type LLMSelector struct {
	provider provider.Provider
}

// NewLLMSelector returns a selector backed by p.
func NewLLMSelector(p provider.Provider) *LLMSelector {
	return &LLMSelector{provider: p}
}

// Select implements Selector.
func (s *LLMSelector) Select(ctx context.Context, query string, options []Option) (int, error) {
	resp, err := s.provider.Generate(ctx, []provider.Message{
		provider.UserMessage(selectionPrompt(query, options)),
	}, nil)
	if err != nil {
		return 0, err
	}
	if resp == nil {
		return 0, ErrSelectionFormat
	}
	return parseSelection(resp.Content)
}

func selectionPrompt(query string, options []Option) string {
	var b strings.Builder
	b.WriteString("Select the most appropriate location from these search results.\n\n")
	fmt.Fprintf(&b, "Search Query: %q\n\nOptions:\n", query)
	for i, opt := range options {
		fmt.Fprintf(&b, "%d. %s\n", i+1, opt.Label)
	}
	b.WriteString("\nRespond with ONLY the number (1, 2, 3, etc.) of your selection. Start with 1.")
	return b.String()
}

func parseSelection(reply string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(reply), ".")))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrSelectionFormat, reply)
	}
	return n, nil
}
