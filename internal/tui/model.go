// Package tui displays a code snippet in the terminal
// with a copy to clipboard control.
package tui

import (
	"context"
	"html"
	"io"
	"log"
	"strings"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/microcosm-cc/bluemonday"
	"go.abhg.dev/snippet/internal/clipboard"
	"go.abhg.dev/snippet/internal/copybutton"
	"go.abhg.dev/snippet/internal/highlight"
	"go.abhg.dev/snippet/internal/snippet"
)

var (
	_titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#fb923c")).
			MarginBottom(1)

	_descriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#d1d5db")).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#374151")).
				Padding(0, 1).
				MarginBottom(1)

	_buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#374151")).
			Padding(0, 1)

	_helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6b7280")).
			MarginTop(1)
)

// changedMsg reports that the copy control changed state.
type changedMsg struct{}

// Option customizes a [Model].
type Option func(*config)

type config struct {
	log   *log.Logger
	clock copybutton.Clock
	style *chroma.Style
}

// WithLogger specifies where copy failures are reported.
// Defaults to the standard logger.
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.log = l }
}

// WithClock specifies the clock used to reset the copy control.
func WithClock(clock copybutton.Clock) Option {
	return func(c *config) { c.clock = clock }
}

// WithStyle specifies the highlighting style.
func WithStyle(s *chroma.Style) Option {
	return func(c *config) { c.style = s }
}

// Model is a bubbletea model displaying a single snippet.
type Model struct {
	ctx     context.Context
	snip    *snippet.Snippet
	button  *copybutton.Button
	changes chan struct{}

	code        string // highlighted code
	description string // description as plain text
}

var _ tea.Model = (*Model)(nil)

// New builds a model for the given snippet,
// copying to the given clipboard.
//
// The model must be closed when it's no longer displayed.
func New(ctx context.Context, s *snippet.Snippet, w clipboard.Writer, opts ...Option) (*Model, error) {
	cfg := config{
		log:   log.Default(),
		clock: copybutton.SystemClock,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	code, err := highlight.Terminal(highlight.Lex(s.Code, s.Language), cfg.style)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	m := &Model{
		ctx:         ctx,
		snip:        s,
		changes:     make(chan struct{}, 16),
		code:        strings.TrimRight(code, "\n"),
		description: plainText(s.Description),
	}
	m.button = copybutton.New(w,
		copybutton.WithLogger(cfg.log),
		copybutton.WithClock(cfg.clock),
		copybutton.OnChange(func(bool) {
			select {
			case m.changes <- struct{}{}:
			default:
				// A redraw is already queued.
			}
		}),
	)
	return m, nil
}

// plainText strips markup from a description.
func plainText(desc string) string {
	desc = bluemonday.StrictPolicy().Sanitize(desc)
	return strings.TrimSpace(html.UnescapeString(desc))
}

// Close stops the copy control.
func (m *Model) Close() {
	m.button.Close()
}

// Copied reports whether the copy control shows that the code was copied.
func (m *Model) Copied() bool {
	return m.button.Copied()
}

// Init starts listening for changes to the copy control.
func (m *Model) Init() tea.Cmd {
	return m.waitForChange
}

func (m *Model) waitForChange() tea.Msg {
	select {
	case <-m.changes:
		return changedMsg{}
	case <-m.ctx.Done():
		return nil
	}
}

// Update handles key presses and copy control changes.
//
// Copies happen inside Update so that a copy and its failure report
// complete before the next key is handled.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "c", "y", "enter":
			m.button.Copy(m.ctx, m.snip.Code)
			return m, nil
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case changedMsg:
		return m, m.waitForChange
	}
	return m, nil
}

// View renders the snippet.
func (m *Model) View() string {
	var sb strings.Builder
	if len(m.snip.Title) > 0 {
		sb.WriteString(_titleStyle.Render(m.snip.Title))
		sb.WriteString("\n")
	}
	if len(m.description) > 0 {
		sb.WriteString(_descriptionStyle.Render(m.description))
		sb.WriteString("\n")
	}
	sb.WriteString(_buttonStyle.Render(m.button.Glyph() + " " + m.button.Label()))
	sb.WriteString("\n\n")
	sb.WriteString(m.code)
	sb.WriteString("\n")
	sb.WriteString(_helpStyle.Render("c: copy • q: quit"))
	sb.WriteString("\n")
	return sb.String()
}

// Run displays the snippet until the user quits or ctx is done.
//
// Copy failures are reported to the logger from [WithLogger]
// by the time Run returns.
func Run(ctx context.Context, s *snippet.Snippet, w clipboard.Writer, in io.Reader, out io.Writer, opts ...Option) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m, err := New(ctx, s, w, opts...)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer m.Close()

	_, err = tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	).Run()
	return errtrace.Wrap(err)
}
