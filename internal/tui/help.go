package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

const helpWrap = 60

// helpMarkdown lists every form binding as a markdown table.
func (m *Model) helpMarkdown() string {
	var b strings.Builder
	b.WriteString("# Keys\n\n")
	b.WriteString("| Key | Action |\n|---|---|\n")
	for _, kb := range m.keys.BindingsForScope(scopeForm) {
		fmt.Fprintf(&b, "| %s | %s |\n", strings.Join(kb.Keys, ", "), kb.Help)
	}
	b.WriteString("\nText that is not a number counts as 0 when the total is calculated. ")
	b.WriteString("Any edit clears the total until it is calculated again.\n")
	return b.String()
}

func (m *Model) helpView() string {
	md := m.helpMarkdown()
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.helpStyle),
		glamour.WithWordWrap(helpWrap),
	)
	if err != nil {
		m.log.Sugar().Debugf("help renderer: %v", err)
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		m.log.Sugar().Debugf("render help: %v", err)
		return md
	}
	return out
}
