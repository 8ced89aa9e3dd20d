package tui

import (
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/algodrill/internal/analyzer"
	"github.com/felixgeelhaar/algodrill/internal/catalog"
	"github.com/felixgeelhaar/algodrill/internal/domain"
	"github.com/felixgeelhaar/algodrill/internal/practice"
)

func newTestModel(t *testing.T, id string) (Model, *practice.Service) {
	t.Helper()

	registry := catalog.NewRegistry(catalog.NewLoader(""))
	require.NoError(t, registry.Load())

	svc := practice.NewService(registry, analyzer.New(), practice.Options{
		Seed:   11,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	m, err := New(svc, id)
	require.NoError(t, err)
	return m, svc
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok, "Update returned %T", next)
	}
	return m
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNew_DefaultsToFirstEntry(t *testing.T) {
	m, svc := newTestModel(t, "")

	require.NotNil(t, svc.Current())
	assert.Equal(t, "binary_search", svc.Current().AlgorithmID)
	assert.Equal(t, ModeAnswer, m.mode)
	assert.True(t, m.input.Focused())
}

func TestNew_UnknownAlgorithm(t *testing.T) {
	registry := catalog.NewRegistry(catalog.NewLoader(""))
	require.NoError(t, registry.Load())
	svc := practice.NewService(registry, analyzer.New(), practice.Options{Seed: 1})

	_, err := New(svc, "no_such_algorithm")
	assert.ErrorIs(t, err, domain.ErrAlgorithmNotFound)
}

func TestModel_CheckAnswer(t *testing.T) {
	m, svc := newTestModel(t, "recurrence_c")

	m = send(t, m, typed("theta(n^2)"), key(tea.KeyEnter))
	require.NotNil(t, m.verdict)
	assert.True(t, m.verdict.Correct)
	assert.Equal(t, 1, svc.Current().Attempts)
	assert.Contains(t, m.View(), "Correct!")

	// Editing the answer clears the verdict
	m = send(t, m, typed("x"))
	assert.Nil(t, m.verdict)

	m = send(t, m, key(tea.KeyEnter))
	require.NotNil(t, m.verdict)
	assert.False(t, m.verdict.Correct)
	assert.Equal(t, 2, svc.Current().Attempts)
	assert.Contains(t, m.View(), "Incorrect")
}

func TestModel_NewProblemKey(t *testing.T) {
	m, svc := newTestModel(t, "stack_ops")
	first := svc.Current().ID

	m = send(t, m, typed("n"))
	assert.NotEqual(t, first, svc.Current().ID, "n on an empty field should start a new problem")
	assert.Equal(t, "stack_ops", svc.Current().AlgorithmID)
	assert.Empty(t, m.input.Value())

	second := svc.Current().ID
	m = send(t, m, typed("1"), typed("n"))
	assert.Equal(t, second, svc.Current().ID, "n after text is part of the answer")
	assert.Equal(t, "1n", m.input.Value())

	m = send(t, m, key(tea.KeyCtrlN))
	assert.NotEqual(t, second, svc.Current().ID)
	assert.Empty(t, m.input.Value())
}

func TestModel_CycleAlgorithms(t *testing.T) {
	m, svc := newTestModel(t, "recurrence_c")

	m = send(t, m, key(tea.KeyTab))
	assert.Equal(t, "recurrence_j", svc.Current().AlgorithmID)

	m = send(t, m, key(tea.KeyShiftTab), key(tea.KeyShiftTab))
	assert.Equal(t, "recurrence_a", svc.Current().AlgorithmID)
	assert.Nil(t, m.verdict)
}

func TestModel_HintRevealTrace(t *testing.T) {
	m, svc := newTestModel(t, "recurrence_c")

	m = send(t, m, key(tea.KeyCtrlH))
	assert.True(t, svc.Current().HintShown)
	assert.Contains(t, m.View(), "Hint:")

	m = send(t, m, key(tea.KeyCtrlR))
	assert.Equal(t, "Theta(n^2)", m.revealed)
	assert.True(t, svc.Current().Revealed)
	assert.Contains(t, m.View(), "Theta(n^2)")

	m = send(t, m, key(tea.KeyCtrlT))
	assert.True(t, svc.Current().TraceShown)
	assert.NotEmpty(t, m.trace)
	assert.Contains(t, m.View(), "Answer / Work")

	m = send(t, m, key(tea.KeyCtrlT))
	assert.False(t, svc.Current().TraceShown)
	assert.Nil(t, m.trace)
}

func TestModel_ReferenceCode(t *testing.T) {
	m, svc := newTestModel(t, "binary_search")
	before := svc.Language()

	m = send(t, m, key(tea.KeyCtrlL))
	assert.NotEqual(t, before, svc.Language())

	m = send(t, m, key(tea.KeyCtrlS))
	assert.True(t, svc.Current().SolutionShown)
	assert.Contains(t, m.View(), "Reference")
	assert.Contains(t, m.View(), svc.Language().Label())
}

func TestModel_Editor(t *testing.T) {
	m, svc := newTestModel(t, "linear_search")

	m = send(t, m, key(tea.KeyCtrlE))
	assert.Equal(t, ModeEditor, m.mode)
	assert.False(t, m.input.Focused())

	// Keys go to the editor, not the answer field or the key bindings
	m = send(t, m, typed("for i in range(len(a)):  if a[i] == x: return i"), key(tea.KeyTab))
	assert.Contains(t, m.editor.Value(), "for i in range")
	assert.Empty(t, m.input.Value())
	assert.Equal(t, "linear_search", svc.Current().AlgorithmID)

	m = send(t, m, key(tea.KeyCtrlD))
	require.NotNil(t, m.report)
	require.NotNil(t, svc.Current().LastReport)
	assert.Contains(t, m.View(), "Analysis:")

	m = send(t, m, key(tea.KeyEsc))
	assert.Equal(t, ModeAnswer, m.mode)
	assert.True(t, m.input.Focused())
}

func TestModel_EmptyEditorSkipsAnalysis(t *testing.T) {
	m, svc := newTestModel(t, "linear_search")

	m = send(t, m, key(tea.KeyCtrlE), key(tea.KeyCtrlD))
	assert.Nil(t, m.report)
	assert.Nil(t, svc.Current().LastReport)
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t, "")

	next, cmd := m.Update(key(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}

func TestModel_WindowSize(t *testing.T) {
	m, _ := newTestModel(t, "")

	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 94, m.input.Width)
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		percent int
		filled  int
	}{
		{0, 0},
		{50, 10},
		{100, 20},
		{150, 20},
		{-5, 0},
	}
	for _, tt := range tests {
		got := progressBar(tt.percent)
		want := "[" + repeat("█", tt.filled) + repeat("░", barWidth-tt.filled) + "]"
		if got != want {
			t.Errorf("progressBar(%d) = %q; want %q", tt.percent, got, want)
		}
	}
}

func repeat(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}
