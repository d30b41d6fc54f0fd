package ui

import (
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ComputelessComputer/johnjeong/internal/content"
)

// Options configures the Bubble Tea model.
type Options struct {
	State  *State
	Opener Opener
	Logger *slog.Logger
	// Watcher, when set, triggers Reload on content changes.
	Watcher *content.Watcher
	Reload  func() (*content.Bundle, error)
}

// Model implements the Bubble Tea program for the content browser.
type Model struct {
	state   *State
	keys    keyMap
	opener  Opener
	logger  *slog.Logger
	watcher *content.Watcher
	reload  func() (*content.Bundle, error)
	ready   bool
}

type contentChangedMsg struct {
	change content.Change
}

// NewModel constructs the model with the provided options.
func NewModel(opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	opener := opts.Opener
	if opener == nil {
		opener = Browser{}
	}
	return &Model{
		state:   opts.State,
		keys:    keys,
		opener:  loggingOpener{Opener: opener, logger: logger},
		logger:  logger,
		watcher: opts.Watcher,
		reload:  opts.Reload,
	}
}

// State returns the model's application state.
func (m *Model) State() *State {
	return m.state
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.waitForChange()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Resize(msg.Width, msg.Height)
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		a := m.keys.dispatch(msg, m.state)
		m.state.apply(a, m.opener)
		if !m.state.Running() {
			return m, tea.Quit
		}
		return m, nil

	case contentChangedMsg:
		m.handleChange(msg.change)
		return m, m.waitForChange()
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return ""
	}
	return Render(m.state, m.state.width, m.state.height)
}

func (m *Model) waitForChange() tea.Cmd {
	if m.watcher == nil || m.reload == nil {
		return nil
	}
	ch := m.watcher.Changes()
	return func() tea.Msg {
		change, ok := <-ch
		if !ok {
			return nil
		}
		return contentChangedMsg{change: change}
	}
}

func (m *Model) handleChange(change content.Change) {
	if change.Err != nil {
		m.logger.Error("watching content", "error", change.Err)
		m.state.status = "Watch error: " + change.Err.Error()
		return
	}
	bundle, err := m.reload()
	if err != nil {
		m.logger.Error("reloading content", "path", change.Path, "error", err)
		m.state.status = "Reload failed: " + err.Error()
		return
	}
	m.state.SetBundle(bundle)
	m.state.status = "Reloaded content"
	m.logger.Info("reloaded content", bundle.Summary()...)
}
