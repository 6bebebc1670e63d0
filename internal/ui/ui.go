package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Cyclone1070/weatheragent/internal/config"
	"github.com/Cyclone1070/weatheragent/internal/ui/services"
	"github.com/Cyclone1070/weatheragent/internal/ui/views"
	"github.com/Cyclone1070/weatheragent/internal/workflow"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrInterrupted is returned by ReadInput on Ctrl+C or end of input.
var ErrInterrupted = errors.New("input interrupted")

const defaultWidth = 80

// SpinnerFactory creates a new spinner
type SpinnerFactory func() spinner.Model

// UI is the line oriented terminal of the chat: a bubbletea prompt, a bubbletea
// status line while a turn runs, and glamour answers in a lipgloss panel.
type UI struct {
	in     io.Reader
	out    io.Writer
	width  int
	styles views.Styles
	logger *slog.Logger

	renderer       services.MarkdownRenderer
	spinnerFactory SpinnerFactory
}

// Option configures a UI.
type Option func(*UI)

// WithIO replaces stdin and stdout.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(u *UI) {
		u.in = in
		u.out = out
	}
}

// WithWidth sets the width answers are wrapped to.
func WithWidth(width int) Option {
	return func(u *UI) {
		u.width = width
	}
}

// WithLogger sets the logger for rendering faults.
func WithLogger(logger *slog.Logger) Option {
	return func(u *UI) {
		u.logger = logger
	}
}

// NewUI creates a UI.
func NewUI(cfg config.UIConfig, renderer services.MarkdownRenderer, spinnerFactory SpinnerFactory, opts ...Option) *UI {
	u := &UI{
		out:            os.Stdout,
		width:          defaultWidth,
		styles:         views.NewStyles(cfg),
		logger:         slog.New(slog.DiscardHandler),
		renderer:       renderer,
		spinnerFactory: spinnerFactory,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *UI) println(s string) {
	fmt.Fprintln(u.out, s)
}

func (u *UI) programOptions(ctx context.Context) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithOutput(u.out), tea.WithContext(ctx)}
	if u.in != nil {
		opts = append(opts, tea.WithInput(u.in))
	}
	return opts
}

// Welcome prints the startup banner.
func (u *UI) Welcome() {
	u.println(views.RenderWelcome(u.styles))
}

// ReadInput prompts for one line. It returns ErrInterrupted on Ctrl+C or EOF.
func (u *UI) ReadInput(ctx context.Context) (string, error) {
	p := tea.NewProgram(newPromptModel(views.RenderPromptLabel(u.styles)), u.programOptions(ctx)...)
	final, err := p.Run()
	switch {
	case errors.Is(err, tea.ErrInterrupted):
		return "", ErrInterrupted
	case err != nil && ctx.Err() != nil:
		return "", ctx.Err()
	case err != nil:
		return "", fmt.Errorf("read input: %w", err)
	}
	m, ok := final.(promptModel)
	if !ok || m.interrupted || !m.submitted {
		return "", ErrInterrupted
	}
	return m.Value(), nil
}

// Progress shows a spinner that follows events until the turn's DoneEvent.
// Every event up to and including the DoneEvent is consumed, even when the
// status line cannot be drawn.
func (u *UI) Progress(events <-chan workflow.Event) {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	if u.spinnerFactory != nil {
		sp = u.spinnerFactory()
	}
	opts := append(u.programOptions(context.Background()), tea.WithInput(nil))
	p := tea.NewProgram(newStatusModel(sp, u.styles), opts...)

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		if _, err := p.Run(); err != nil {
			u.logger.Warn("status line stopped", "error", err)
		}
	}()

	for ev := range events {
		p.Send(eventMsg{event: ev})
		if _, done := ev.(workflow.DoneEvent); done {
			break
		}
	}
	p.Quit()
	<-finished
}

// WriteAnswer renders content as markdown inside the answer panel, or the
// no-answer line when content is blank.
func (u *UI) WriteAnswer(content string) {
	if strings.TrimSpace(content) == "" {
		u.println(views.RenderNoAnswer(u.styles))
		return
	}
	rendered, err := services.RenderMarkdown(content, u.width-4, u.renderer)
	if err != nil {
		u.logger.Warn("markdown rendering failed, printing plain text", "error", err)
		rendered = content
	}
	u.println(views.RenderAnswer(rendered, u.width, u.styles))
}

// WriteError reports a failed turn.
func (u *UI) WriteError(err error) {
	u.println(views.RenderError(err, u.styles))
}

// Goodbye prints the exit message.
func (u *UI) Goodbye() {
	u.println(views.RenderGoodbye(u.styles))
}
