package recap

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bnema/slack-tui/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var ErrUnexpectedModel = errors.New("unexpected final recap model type")

// Navigator is the cursor the interactive view drives.
type Navigator interface {
	Load(ctx context.Context) error
	Next() (domain.RecapEntry, error)
	Previous() (domain.RecapEntry, error)
	Current() (domain.RecapEntry, error)
	Position() (int, int)
}

type loadedMsg struct {
	err error
}

type Model struct {
	ctx     context.Context
	nav     Navigator
	opts    Options
	keys    KeyMap
	styles  styles
	spinner spinner.Model

	loading bool
	entry   domain.RecapEntry
	empty   bool
	err     error
}

func NewModel(ctx context.Context, nav Navigator, opts Options) Model {
	return Model{
		ctx:  ctx,
		nav:  nav,
		opts: opts,
		keys: DefaultKeyMap(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		styles:  newStyles(),
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load)
}

func (m Model) load() tea.Msg {
	return loadedMsg{err: m.nav.Load(m.ctx)}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case loadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		return m.show(m.nav.Current())
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case m.loading:
			return m, nil
		case key.Matches(msg, m.keys.Next):
			return m.show(m.nav.Next())
		case key.Matches(msg, m.keys.Previous):
			return m.show(m.nav.Previous())
		}
	}

	return m, nil
}

func (m Model) show(entry domain.RecapEntry, err error) (tea.Model, tea.Cmd) {
	switch {
	case errors.Is(err, domain.ErrRecapEmpty):
		m.empty = true
	case errors.Is(err, domain.ErrRecapNotReady):
	case err != nil:
		m.err = err
		return m, tea.Quit
	default:
		m.empty = false
		m.entry = entry
	}
	return m, nil
}

func (m Model) View() string {
	if m.loading {
		return fmt.Sprintf("%s Building recap...", m.spinner.View())
	}
	if m.err != nil {
		return m.styles.err.Render("recap failed: " + m.err.Error())
	}
	if m.empty {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.styles.summary.Render("No channels to recap."),
			m.styles.help.Render(m.keys.helpLine()),
		)
	}

	index, total := m.nav.Position()
	return lipgloss.JoinVertical(lipgloss.Left,
		renderEntry(m.entry, index, total, m.opts, m.styles),
		m.styles.help.Render(m.keys.helpLine()),
	)
}

// Err reports the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run drives the interactive recap until the user exits.
func Run(ctx context.Context, nav Navigator, opts Options, input io.Reader, output io.Writer) error {
	p := tea.NewProgram(
		NewModel(ctx, nav, opts),
		tea.WithInput(input),
		tea.WithOutput(output),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(Model)
	if !ok {
		return ErrUnexpectedModel
	}

	return result.Err()
}
