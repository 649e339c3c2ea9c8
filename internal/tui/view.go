package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const dividerWidth = 36

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.labels.Title))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(m.labels.Subtitle))
	b.WriteString("\n\n")

	if m.showHelp {
		b.WriteString(m.helpView())
	} else {
		b.WriteString(m.formView())
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.help.ShortHelpView(m.keys.HelpBindings(m.scope()))))
	return frameStyle.Render(b.String())
}

func (m *Model) formView() string {
	kind, row := m.focusTarget()
	canRemove := m.form.CanRemove()

	var rows []string
	for i, e := range m.form.Entries() {
		focused := kind == focusRow && row == i
		rows = append(rows, m.rowView(i, m.inputs[e.ID].View(), focused, canRemove))
	}

	parts := []string{
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		"",
		renderButton(plusGlyph()+" "+m.labels.AddButton, kind == focusAdd, false),
		"",
		dividerStyle.Render(strings.Repeat("- ", dividerWidth/2)),
	}
	if sum, ok := m.form.Sum(); ok {
		panel := lipgloss.JoinVertical(lipgloss.Center,
			resultLabelStyle.Render(m.labels.ResultLabel),
			resultValueStyle.Render(m.formatter.Format(sum)),
		)
		parts = append(parts, "", resultBoxStyle.Render(panel))
	}
	parts = append(parts, "", renderButton(calculatorGlyph()+" "+m.labels.CalcButton, kind == focusCalculate, true))
	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

// rowView draws "N." with its 1-based position, the input box and the
// remove control, which is dimmed while only one row exists.
func (m *Model) rowView(i int, input string, focused, canRemove bool) string {
	box := inputBoxStyle
	remove := removeStyle
	if focused {
		box = inputBoxFocusedStyle
		remove = removeFocusedStyle
	}
	if !canRemove {
		remove = removeDisabledStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		indexStyle.Render(fmt.Sprintf("%d.", i+1)),
		" ",
		box.Render(input),
		remove.Render(trashGlyph()),
	)
}

func renderButton(label string, focused, primary bool) string {
	style := buttonStyle
	switch {
	case primary && focused:
		style = primaryFocused
	case primary:
		style = primaryStyle
	case focused:
		style = buttonFocusedStyle
	}
	return style.Render(label)
}
