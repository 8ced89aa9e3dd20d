package tui

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/algodrill/internal/analyzer"
)

const barWidth = 20

var footerKeys = map[Mode][]string{
	ModeAnswer: {
		"[enter] check", "[n] new", "[tab] next", "[ctrl+h] hint", "[ctrl+r] reveal",
		"[ctrl+t] trace", "[ctrl+l] language", "[ctrl+s] code", "[ctrl+e] editor", "[ctrl+c] quit",
	},
	ModeEditor: {
		"[ctrl+d] analyze", "[esc] back", "[ctrl+c] quit",
	},
}

// View renders the screen
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	session := m.svc.Current()
	entry, err := m.svc.Entry()
	if session == nil || err != nil {
		return "Loading...\n"
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render("algodrill"))
	b.WriteString(m.styles.Muted.Render("  ·  "))
	b.WriteString(m.styles.Subtitle.Render(entry.Category().Title() + " › " + entry.Name()))
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  seed %d", session.Seed)))
	b.WriteString("\n\n")

	if drawing := m.renderer.Instance(session.Instance); drawing != "" {
		b.WriteString(m.styles.Box.Render(drawing))
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.Heading.Render("Question"))
	b.WriteString("\n")
	if q, err := m.svc.Question(); err == nil {
		b.WriteString(q)
	}
	b.WriteString("\n\n")

	if session.HintShown && entry.Algorithm.Hint != "" {
		b.WriteString(m.styles.Hint.Render("Hint: " + entry.Algorithm.Hint))
		b.WriteString("\n\n")
	}

	if session.TraceShown && len(m.trace) > 0 {
		b.WriteString(m.styles.Heading.Render("Answer / Work"))
		b.WriteString("\n")
		b.WriteString(m.styles.CodeBox.Render(strings.Join(m.trace, "\n")))
		b.WriteString("\n\n")
	}

	if m.revealed != "" {
		b.WriteString(m.styles.Heading.Render("Answer: "))
		b.WriteString(m.revealed)
		b.WriteString("\n\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.verdict != nil {
		if m.verdict.Correct {
			b.WriteString(m.styles.Success.Render("✓ Correct!"))
		} else {
			b.WriteString(m.styles.Error.Render("✗ Incorrect"))
		}
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  (attempt %d)", session.Attempts)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if session.SolutionShown {
		b.WriteString(m.renderReference())
		b.WriteString("\n")
	}

	if m.mode == ModeEditor {
		b.WriteString(m.styles.Heading.Render("Your code"))
		b.WriteString("\n")
		b.WriteString(m.editor.View())
		b.WriteString("\n\n")
	}

	if m.report != nil {
		b.WriteString(m.renderReport(*m.report))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Footer.Render(strings.Join(footerKeys[m.mode], "  ")))
	return b.String()
}

func (m Model) renderReference() string {
	code, lang, err := m.svc.ReferenceCode()
	if err != nil {
		return m.styles.Muted.Render("// No code available") + "\n"
	}

	var b strings.Builder
	b.WriteString(m.styles.Heading.Render("Reference"))
	b.WriteString(m.styles.Muted.Render(" [" + lang.Label() + "]"))
	if lang != m.svc.Language() {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf(" (no %s version)", m.svc.Language().Label())))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.CodeBox.Render(strings.TrimRight(code, "\n")))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderReport(r analyzer.Report) string {
	var b strings.Builder
	b.WriteString(m.styles.Heading.Render("Analysis: " + r.Language))
	b.WriteString("\n")
	b.WriteString(progressBar(r.Percentage))
	b.WriteString(fmt.Sprintf(" %d%%\n", r.Percentage))
	for _, f := range r.Feedback {
		if f.Passed {
			b.WriteString(m.styles.Success.Render("  ✓ " + f.Text))
		} else {
			b.WriteString(m.styles.Error.Render("  ✗ " + f.Text))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func progressBar(percent int) string {
	percent = min(max(percent, 0), 100)
	filled := percent * barWidth / 100
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled) + "]"
}
