// Package tui is the interactive practice loop.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/felixgeelhaar/algodrill/internal/analyzer"
	"github.com/felixgeelhaar/algodrill/internal/answer"
	"github.com/felixgeelhaar/algodrill/internal/practice"
	"github.com/felixgeelhaar/algodrill/internal/render"
)

// Mode selects which widget receives keys
type Mode int

const (
	// ModeAnswer routes keys to the answer field
	ModeAnswer Mode = iota

	// ModeEditor routes keys to the code editor
	ModeEditor
)

// Model is the bubbletea model for a practice session
type Model struct {
	svc      *practice.Service
	styles   Styles
	renderer *render.Renderer

	input  textinput.Model
	editor textarea.Model
	mode   Mode

	// Per-problem view state; cleared on every new problem
	verdict  *answer.Verdict
	revealed string
	trace    []string
	report   *analyzer.Report

	err      error
	width    int
	height   int
	quitting bool
}

// New creates a model and starts a problem for id, or for the first catalog
// entry when id is empty
func New(svc *practice.Service, id string) (Model, error) {
	var err error
	if id == "" {
		_, err = svc.Cycle(0)
	} else {
		_, err = svc.Start(id)
	}
	if err != nil {
		return Model{}, fmt.Errorf("start practice: %w", err)
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Enter answer..."
	ti.CharLimit = 256
	ti.Width = 60
	ti.Focus()

	ta := textarea.New()
	ta.Placeholder = "Write your solution, then ctrl+d to analyze"
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.SetWidth(80)
	ta.SetHeight(12)

	styles := DefaultStyles()
	return Model{
		svc:      svc,
		styles:   styles,
		renderer: render.New(styles.Instance),
		input:    ti,
		editor:   ta,
		mode:     ModeAnswer,
	}, nil
}

// Run starts the program on the alternate screen
func Run(svc *practice.Service, id string, opts ...tea.ProgramOption) error {
	m, err := New(svc, id)
	if err != nil {
		return err
	}
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("run practice: %w", err)
	}
	return nil
}

// Init starts the cursor blink
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key and window events
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-6, 20)
		m.editor.SetWidth(max(msg.Width-4, 20))
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.mode == ModeEditor {
			return m.updateEditor(msg)
		}
		return m.updateAnswer(msg)
	}

	var cmd tea.Cmd
	if m.mode == ModeEditor {
		m.editor, cmd = m.editor.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m Model) updateAnswer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.check()
		return m, nil
	case "ctrl+n":
		m.newProblem()
		return m, nil
	case "n":
		// Typed 'n' belongs to the answer once the field has text
		if m.input.Value() == "" {
			m.newProblem()
			return m, nil
		}
	case "tab":
		m.cycle(1)
		return m, nil
	case "shift+tab":
		m.cycle(-1)
		return m, nil
	case "ctrl+h":
		_, m.err = m.svc.ToggleHint()
		return m, nil
	case "ctrl+r":
		m.reveal()
		return m, nil
	case "ctrl+t":
		m.toggleTrace()
		return m, nil
	case "ctrl+l":
		m.svc.CycleLanguage()
		return m, nil
	case "ctrl+s":
		_, m.err = m.svc.ToggleSolution()
		return m, nil
	case "ctrl+e":
		return m, m.openEditor()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.verdict = nil
	}
	return m, cmd
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+e":
		m.closeEditor()
		return m, textinput.Blink
	case "ctrl+d":
		m.analyze()
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *Model) check() {
	v, err := m.svc.Check(m.input.Value())
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.verdict = &v
}

func (m *Model) reveal() {
	ans, err := m.svc.Reveal()
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.revealed = ans.Text
}

func (m *Model) toggleTrace() {
	shown, err := m.svc.ToggleTrace()
	if err != nil {
		m.err = err
		return
	}
	if !shown {
		m.trace = nil
		return
	}
	m.trace, m.err = m.svc.Trace()
}

func (m *Model) analyze() {
	code := m.editor.Value()
	if strings.TrimSpace(code) == "" {
		m.report = nil
		return
	}
	r, err := m.svc.SubmitCode(code)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.report = &r
}

func (m *Model) openEditor() tea.Cmd {
	m.mode = ModeEditor
	m.input.Blur()
	return m.editor.Focus()
}

func (m *Model) closeEditor() {
	m.mode = ModeAnswer
	m.editor.Blur()
	m.input.Focus()
}

func (m *Model) newProblem() {
	if _, err := m.svc.NewProblem(); err != nil {
		m.err = err
		return
	}
	m.reset()
}

func (m *Model) cycle(delta int) {
	if _, err := m.svc.Cycle(delta); err != nil {
		m.err = err
		return
	}
	m.reset()
	m.editor.Reset()
}

func (m *Model) reset() {
	m.input.Reset()
	m.verdict = nil
	m.revealed = ""
	m.trace = nil
	m.report = nil
	m.err = nil
}
